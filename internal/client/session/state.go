package session

import "github.com/dmitrijs2005/voyage/internal/client/models"

// State is a point-in-time copy of the session.
type State struct {
	User    *models.User
	Loading bool
}

func (s State) IsAuthenticated() bool {
	return s.User != nil
}
