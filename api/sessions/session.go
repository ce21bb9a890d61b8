package sessions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/playback"
	sessionManager "github.com/killallgit/annotator-api/internal/services/sessions"
)

// errResponded signals that the action already wrote its own response
var errResponded = errors.New("response already sent")

type sessionAction func(c *gin.Context, session *sessionManager.Session) (*playback.SeekPlan, error)

// withSession looks up the session, runs action and renders the resulting
// player state together with any plan the action issued
func withSession(deps *types.Dependencies, action sessionAction) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := deps.Sessions.Get(c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}

		plan, err := action(c, session)
		if errors.Is(err, errResponded) {
			return
		}
		if err != nil {
			types.SendError(c, err)
			return
		}

		if plan != nil {
			deps.Log().Debug("session plan issued", "session", session.ID, "seq", plan.Seq, "kind", plan.Kind)
		}
		c.JSON(http.StatusOK, types.NewSessionResponse(session, plan))
	}
}
