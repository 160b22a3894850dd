package systems

import (
	"strings"
	"testing"

	"ebiten-shooter/ecs"
)

func TestScoreboardRatio(t *testing.T) {
	tests := []struct {
		kills, deaths int
		want          string
	}{
		{0, 0, RatioNoDeaths},
		{5, 0, RatioNoDeaths},
		{0, 2, RatioNoKills},
		{3, 2, "15%"},
		{1, 3, "3%"},
		{5, 4, "13%"},
		{10, 1, "100%"},
	}
	for _, tt := range tests {
		s := &Scoreboard{HostileKills: tt.kills, PlayerDeaths: tt.deaths}
		if got := s.Ratio(); got != tt.want {
			t.Errorf("Ratio(%d kills, %d deaths) = %q, want %q", tt.kills, tt.deaths, got, tt.want)
		}
	}
}

func TestScoreboardFollowsEvents(t *testing.T) {
	em := ecs.NewEventManager()
	s := NewScoreboard()
	s.Subscribe(em)

	em.Emit(HostileKilledEvent{})
	em.Emit(HostileKilledEvent{})
	em.Emit(PlayerKilledEvent{})
	em.Emit(ProjectileFiredEvent{})

	if s.HostileKills != 2 || s.PlayerDeaths != 1 {
		t.Fatalf("unexpected counters %+v", s)
	}
	if s.Score() != 20 || s.LivesLost() != 100 {
		t.Fatalf("score %d lives %d", s.Score(), s.LivesLost())
	}
	if !strings.Contains(s.Summary(), "RATIO 20%") {
		t.Fatalf("summary %q", s.Summary())
	}
}

func TestMessageLogRecordsSimulationEvents(t *testing.T) {
	em := ecs.NewEventManager()
	ml := NewMessageLog()
	ml.Subscribe(em)

	em.Emit(PlayerSpawnedEvent{PlayerID: 1})
	em.Emit(HostileKilledEvent{HostileID: 7, X: 10, Y: 20})
	em.Emit(PlayerKilledEvent{PlayerID: 1, HostileID: 8})

	recent := ml.RecentMessages(3)
	if len(recent) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(recent))
	}
	if recent[0].Type != MessageTypeAlert || !strings.Contains(recent[0].Text, "enemy #8") {
		t.Errorf("newest message %+v", recent[0])
	}
	if recent[1].Type != MessageTypeCombat || !strings.Contains(recent[1].Text, "Enemy #7") {
		t.Errorf("kill message %+v", recent[1])
	}
}

func TestMessageLogTruncates(t *testing.T) {
	ml := NewMessageLog()
	ml.MaxMessages = 3
	for _, m := range []string{"a", "b", "c", "d"} {
		ml.Add(m)
	}
	if len(ml.Messages) != 3 || ml.Messages[0].Text != "b" {
		t.Fatalf("unexpected log %+v", ml.Messages)
	}
}
