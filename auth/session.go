package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIdKey = "id"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

// LoginUser binds the session to the user. A fresh session is started to avoid fixation.
func (s *Session) LoginUser(id uint64) error {
	s.Clear()
	s.Set(userIdKey, id)
	return s.Save()
}

func (s *Session) LogoutUser() error {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	return s.Save()
}

// UserID returns 0 for anonymous sessions
func (s *Session) UserID() uint64 {
	id, ok := s.Get(userIdKey).(uint64)
	if !ok {
		return 0
	}
	return id
}
