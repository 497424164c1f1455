package domain

// UserStateSuspended marks an account that may read but not author posts
const UserStateSuspended = "S"

// Session is the authenticated user driving a view.
// A nil *Session means the request is anonymous.
type Session struct {
	UserID       string `json:"user_id"`
	Nickname     string `json:"nickname"`
	State        string `json:"state"`
	FavoriteTeam string `json:"favorite_team,omitempty"`
	// Token is forwarded to the remote API on credentialed calls
	Token string `json:"-"`
}

// IsSuspended reports whether the account is suspended
func (s *Session) IsSuspended() bool {
	return s != nil && s.State == UserStateSuspended
}

// IsAuthorOf reports whether the session user wrote p
func (s *Session) IsAuthorOf(p *Post) bool {
	if s == nil || p == nil || s.Nickname == "" {
		return false
	}
	return s.Nickname == p.Author
}
