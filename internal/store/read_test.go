package store

import (
	"context"
	"testing"

	"github.com/ambersail/relayq/internal/command"
)

func TestCommandsForClient_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	inserted := []command.Command{
		mustCommand(t, "wipeAll"),
		mustShare(t, "https://example.com/a", "A"),
		mustShare(t, "https://example.com/b", ""),
	}
	if _, err := s.InsertCommands(ctx, inserted, []string{"client-1"}); err != nil {
		t.Fatalf("InsertCommands() failed: %v", err)
	}

	cc, err := s.CommandsForClient(ctx, "client-1")
	if err != nil {
		t.Fatalf("CommandsForClient() failed: %v", err)
	}

	if cc.ClientGUID != "client-1" {
		t.Errorf("bundle guid = %q, expected %q", cc.ClientGUID, "client-1")
	}
	if len(cc.Commands) != len(inserted) {
		t.Fatalf("got %d commands, expected %d", len(cc.Commands), len(inserted))
	}

	got := valueSet(cc.Commands)
	for _, c := range inserted {
		if !got[c.Value] {
			t.Errorf("missing command %q", c.Value)
		}
	}
	for _, c := range cc.Commands {
		if c.ClientGUID != "client-1" {
			t.Errorf("command guid = %q, expected %q", c.ClientGUID, "client-1")
		}
		if c.ID == 0 {
			t.Error("loaded command has zero ID")
		}
	}
}

func TestCommandsForClient_UnknownClientIsEmptyNotError(t *testing.T) {
	s := createTestStore(t)

	cc, err := s.CommandsForClient(context.Background(), "no-such-client")
	if err != nil {
		t.Fatalf("CommandsForClient() failed: %v", err)
	}

	if cc.ClientGUID != "no-such-client" {
		t.Errorf("bundle guid = %q, expected %q", cc.ClientGUID, "no-such-client")
	}
	if cc.Commands == nil {
		t.Error("Commands is nil, expected empty slice")
	}
	if len(cc.Commands) != 0 {
		t.Errorf("got %d commands, expected 0", len(cc.Commands))
	}
}

func TestCommandsForClient_DoesNotLeakOtherClients(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	mine := mustShare(t, "https://mine.example", "Mine")
	theirs := mustShare(t, "https://theirs.example", "Theirs")
	if _, err := s.InsertCommand(ctx, mine, []string{"client-1"}); err != nil {
		t.Fatalf("InsertCommand() failed: %v", err)
	}
	if _, err := s.InsertCommand(ctx, theirs, []string{"client-2"}); err != nil {
		t.Fatalf("InsertCommand() failed: %v", err)
	}

	cc, err := s.CommandsForClient(ctx, "client-1")
	if err != nil {
		t.Fatalf("CommandsForClient() failed: %v", err)
	}
	if len(cc.Commands) != 1 {
		t.Fatalf("got %d commands, expected 1", len(cc.Commands))
	}
	if cc.Commands[0].Value != mine.Value {
		t.Errorf("got %q, expected %q", cc.Commands[0].Value, mine.Value)
	}
}

func TestAllCommands_GroupsByClient(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	shared := mustCommand(t, "wipeAll")
	soloB := mustShare(t, "https://b.example", "B")
	if _, err := s.InsertCommand(ctx, shared, []string{"client-a", "client-b"}); err != nil {
		t.Fatalf("InsertCommand() failed: %v", err)
	}
	if _, err := s.InsertCommand(ctx, soloB, []string{"client-b"}); err != nil {
		t.Fatalf("InsertCommand() failed: %v", err)
	}

	bundles, err := s.AllCommands(ctx)
	if err != nil {
		t.Fatalf("AllCommands() failed: %v", err)
	}

	if len(bundles) != 2 {
		t.Fatalf("got %d bundles, expected 2", len(bundles))
	}

	byGUID := make(map[string][]command.Command, len(bundles))
	for _, b := range bundles {
		byGUID[b.ClientGUID] = b.Commands
	}
	if len(byGUID["client-a"]) != 1 {
		t.Errorf("client-a has %d commands, expected 1", len(byGUID["client-a"]))
	}
	if len(byGUID["client-b"]) != 2 {
		t.Errorf("client-b has %d commands, expected 2", len(byGUID["client-b"]))
	}
}

func TestAllCommands_EmptyStore(t *testing.T) {
	s := createTestStore(t)

	bundles, err := s.AllCommands(context.Background())
	if err != nil {
		t.Fatalf("AllCommands() failed: %v", err)
	}
	if bundles == nil {
		t.Error("bundles is nil, expected empty slice")
	}
	if len(bundles) != 0 {
		t.Errorf("got %d bundles, expected 0", len(bundles))
	}
}

func TestAllCommands_OmitsDrainedClients(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.InsertCommand(ctx, mustCommand(t, "logout"), []string{"client-1", "client-2"}); err != nil {
		t.Fatalf("InsertCommand() failed: %v", err)
	}
	if err := s.DeleteForClient(ctx, command.ClientCommands{ClientGUID: "client-1"}); err != nil {
		t.Fatalf("DeleteForClient() failed: %v", err)
	}

	bundles, err := s.AllCommands(ctx)
	if err != nil {
		t.Fatalf("AllCommands() failed: %v", err)
	}

	// client-1 has nothing pending: no empty bundle for it.
	if len(bundles) != 1 {
		t.Fatalf("got %d bundles, expected 1", len(bundles))
	}
	if bundles[0].ClientGUID != "client-2" {
		t.Errorf("bundle guid = %q, expected %q", bundles[0].ClientGUID, "client-2")
	}
}

func TestAssociations_All(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.InsertCommand(ctx, mustCommand(t, "wipeAll"), []string{"client-1", "client-2"}); err != nil {
		t.Fatalf("InsertCommand() failed: %v", err)
	}

	assocs, err := s.Associations(ctx)
	if err != nil {
		t.Fatalf("Associations() failed: %v", err)
	}
	if len(assocs) != 2 {
		t.Fatalf("got %d associations, expected 2", len(assocs))
	}
	if assocs[0].CommandID != assocs[1].CommandID {
		t.Error("fan-out of one command produced different command ids")
	}
}

func TestAssociations_FilteredByGUID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.InsertCommand(ctx, mustCommand(t, "wipeAll"), []string{"client-1", "client-2", "client-3"}); err != nil {
		t.Fatalf("InsertCommand() failed: %v", err)
	}

	assocs, err := s.Associations(ctx, "client-1", "client-3")
	if err != nil {
		t.Fatalf("Associations() failed: %v", err)
	}
	if len(assocs) != 2 {
		t.Fatalf("got %d associations, expected 2", len(assocs))
	}
	for _, a := range assocs {
		if a.ClientGUID == "client-2" {
			t.Error("filter leaked client-2")
		}
	}
}
