package transfer

import (
	"time"

	"github.com/riskibarqy/football-cache/internal/domain/team"
)

// Transfer moves a player from TeamOut to TeamIn. Teams are denormalized and
// need not exist in the team table.
type Transfer struct {
	PlayerID   int64
	PlayerName string
	Date       time.Time
	Type       string
	FaType     string
	TeamIn     team.Ref
	TeamOut    team.Ref
}

type Key struct {
	PlayerID  int64
	Date      string
	TeamInID  int64
	TeamOutID int64
}

func (t Transfer) Key() Key {
	return Key{
		PlayerID:  t.PlayerID,
		Date:      t.Date.Format(time.DateOnly),
		TeamInID:  t.TeamIn.ID,
		TeamOutID: t.TeamOut.ID,
	}
}

// Dedupe drops repeated natural keys; the provider lists some moves twice.
func Dedupe(items []Transfer) []Transfer {
	seen := make(map[Key]struct{}, len(items))
	out := make([]Transfer, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.Key()]; ok {
			continue
		}
		seen[item.Key()] = struct{}{}
		out = append(out, item)
	}
	return out
}
