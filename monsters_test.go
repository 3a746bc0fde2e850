package nightfall

import (
	"math"
	"testing"
)

func TestMonsterPresenceHonorsDelays(t *testing.T) {
	if _, active := monsterPresence(monsterStart-0.001, 0); active {
		t.Error("monster 0 active before the window")
	}
	if p, active := monsterPresence(monsterStart, 0); !active || math.Abs(p) > 1e-6 {
		t.Errorf("monster 0 at window start: presence = %f active = %v, want 0 and active", p, active)
	}
	if _, active := monsterPresence(monsterStart+1, 1); active {
		t.Error("monster 1 active before its delay elapsed")
	}
	if _, active := monsterPresence(monsterEnd+0.001, 2); active {
		t.Error("monster 2 active after the window")
	}
}

func TestMonsterPresenceFullyEmerged(t *testing.T) {
	// Well into the window every antagonist is at full presence.
	for i := range monsterSpots {
		p, active := monsterPresence(40, i)
		if !active {
			t.Errorf("monster %d inactive at t=40", i)
			continue
		}
		if math.Abs(p-1) > 1e-6 {
			t.Errorf("monster %d presence at t=40 = %f, want 1", i, p)
		}
	}
}
