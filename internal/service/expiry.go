package service

import (
	"time"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/constants"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/logging"
	"github.com/varmayuvrajwork/rock-paper-scissors/internal/storage"
)

// ExpireIdleSessions deletes sessions that have seen no play for at least
// ttl. Abandoned games would otherwise accumulate in the store forever.
// Returns the number of sessions removed; individual delete failures are
// logged and skipped so one bad row cannot stall the scanner.
func ExpireIdleSessions(repo storage.Repository, ttl time.Duration, now time.Time) (int, error) {
	idle, err := repo.FindIdleSessions(now.Add(-ttl))
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, s := range idle {
		if err := repo.DeleteSession(s.SessionID); err != nil {
			logging.Error("failed to expire idle session", err, logging.Fields{constants.LogFieldSessionID: s.SessionID})
			continue
		}
		logging.Info("idle session expired", logging.Fields{constants.LogFieldSessionID: s.SessionID, constants.LogFieldRound: s.RoundNumber})
		removed++
	}
	return removed, nil
}
