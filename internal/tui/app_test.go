package tui

import (
	"strings"
	"testing"

	"github.com/Flapjacck/pbat/internal/engine"
	"github.com/Flapjacck/pbat/internal/store"
)

func TestFairnessLinesRevealServerSeed(t *testing.T) {
	seeds := engine.Seeds{Server: "deadbeef00", Client: "lucky"}
	session := &store.Session{
		ID:             "sess-1",
		Game:           "roulette",
		ServerSeedHash: seeds.ServerHash(),
		Rounds:         3,
	}

	lines := fairnessLines(session, seeds)
	joined := strings.Join(lines, "\n")

	if !strings.Contains(joined, seeds.Server) {
		t.Errorf("disclosure missing raw server seed %q:\n%s", seeds.Server, joined)
	}
	if !strings.Contains(joined, session.ServerSeedHash) {
		t.Errorf("disclosure missing server seed hash %q:\n%s", session.ServerSeedHash, joined)
	}
	if !strings.Contains(joined, seeds.Client) {
		t.Errorf("disclosure missing client seed %q:\n%s", seeds.Client, joined)
	}
	if !strings.Contains(joined, "pbat verify --game roulette") {
		t.Errorf("disclosure missing verify hint:\n%s", joined)
	}
}
