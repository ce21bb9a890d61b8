package sessions

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/playback"
	sessionManager "github.com/killallgit/annotator-api/internal/services/sessions"
)

// CreateSession starts a player on a video
// @Summary      Create session
// @Description  Build the video's timeline and start a player parked at the beginning of the first segment
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session body types.CreateSessionRequest true "Video to play"
// @Success      201 {object} types.SessionResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Failure      409 {object} types.ErrorResponse "Too many sessions"
// @Router       /api/v1/sessions [post]
func CreateSession(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateSessionRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		session, err := deps.Sessions.Create(c.Request.Context(), req.VideoID)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, types.NewSessionResponse(session, nil))
	}
}

// GetSession returns the player state
// @Summary      Get session
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.SessionResponse
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id} [get]
func GetSession(deps *types.Dependencies) gin.HandlerFunc {
	return withSession(deps, func(c *gin.Context, session *sessionManager.Session) (*playback.SeekPlan, error) {
		return nil, nil
	})
}

// DeleteSession ends a session
// @Summary      Delete session
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.BaseResponse
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id} [delete]
func DeleteSession(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Sessions.Delete(c.Param("id")); err != nil {
			types.SendError(c, err)
			return
		}
		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Session deleted"})
	}
}

// Seek moves playback to a global time
// @Summary      Seek
// @Description  Resolve the time to a segment and issue a seek plan. A plan of kind switch_segment must be confirmed with a ready event carrying its seq.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        seek body types.SeekRequest true "Target time"
// @Success      200 {object} types.SessionResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/seek [post]
func Seek(deps *types.Dependencies) gin.HandlerFunc {
	return withSession(deps, func(c *gin.Context, session *sessionManager.Session) (*playback.SeekPlan, error) {
		var req types.SeekRequest
		if !types.BindJSONOrError(c, &req) {
			return nil, errResponded
		}
		plan, err := session.Player.Seek(*req.Time)
		if err != nil {
			return nil, err
		}
		return &plan, nil
	})
}

// ClickTimeline seeks to a fraction of the timeline and selects its annotation
// @Summary      Timeline click
// @Description  Seek to fraction of the total duration and select the annotation owning that ordinal slot
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        click body types.ClickRequest true "Click position"
// @Success      200 {object} types.SessionResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/click [post]
func ClickTimeline(deps *types.Dependencies) gin.HandlerFunc {
	return withSession(deps, func(c *gin.Context, session *sessionManager.Session) (*playback.SeekPlan, error) {
		var req types.ClickRequest
		if !types.BindJSONOrError(c, &req) {
			return nil, errResponded
		}
		plan, _, err := session.Player.ClickTimeline(*req.Fraction)
		if err != nil {
			return nil, err
		}
		return &plan, nil
	})
}

// Play resumes playback
// @Summary      Play
// @Description  Start playback. While a seek is pending the intent is applied once it completes.
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.SessionResponse
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/play [post]
func Play(deps *types.Dependencies) gin.HandlerFunc {
	return withSession(deps, func(c *gin.Context, session *sessionManager.Session) (*playback.SeekPlan, error) {
		return nil, session.Player.Play()
	})
}

// Pause stops playback
// @Summary      Pause
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.SessionResponse
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/pause [post]
func Pause(deps *types.Dependencies) gin.HandlerFunc {
	return withSession(deps, func(c *gin.Context, session *sessionManager.Session) (*playback.SeekPlan, error) {
		return nil, session.Player.Pause()
	})
}

// SetRate changes the playback rate
// @Summary      Set playback rate
// @Description  The rate is carried into every later seek plan so it survives segment switches
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        rate body types.RateRequest true "Playback rate"
// @Success      200 {object} types.SessionResponse
// @Failure      400 {object} types.ErrorResponse "Invalid rate"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/rate [post]
func SetRate(deps *types.Dependencies) gin.HandlerFunc {
	return withSession(deps, func(c *gin.Context, session *sessionManager.Session) (*playback.SeekPlan, error) {
		var req types.RateRequest
		if !types.BindJSONOrError(c, &req) {
			return nil, errResponded
		}
		return nil, session.Player.SetPlaybackRate(req.Rate)
	})
}

// Select marks an annotation from the list as selected
// @Summary      Select annotation
// @Description  Selecting from the list does not move playback
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        selection body types.SelectRequest true "Annotation to select"
// @Success      200 {object} types.SessionResponse
// @Failure      404 {object} types.ErrorResponse "Session or annotation not found"
// @Router       /api/v1/sessions/{id}/select [post]
func Select(deps *types.Dependencies) gin.HandlerFunc {
	return withSession(deps, func(c *gin.Context, session *sessionManager.Session) (*playback.SeekPlan, error) {
		var req types.SelectRequest
		if !types.BindJSONOrError(c, &req) {
			return nil, errResponded
		}
		return nil, session.Player.Select(req.AnnotationID)
	})
}

// ClearSelection drops the selected annotation
// @Summary      Clear selection
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.SessionResponse
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/selection [delete]
func ClearSelection(deps *types.Dependencies) gin.HandlerFunc {
	return withSession(deps, func(c *gin.Context, session *sessionManager.Session) (*playback.SeekPlan, error) {
		session.Player.ClearSelection()
		return nil, nil
	})
}

// Signal feeds a media element event into the player
// @Summary      Report media event
// @Description  ready and error must carry the seq of the pending plan; stale ones are ignored. A tick near the end of a segment or an ended event may return an auto-advance plan.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        event body types.SignalRequest true "Media event"
// @Success      200 {object} types.SessionResponse
// @Failure      400 {object} types.ErrorResponse "Unknown event kind"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/events [post]
func Signal(deps *types.Dependencies) gin.HandlerFunc {
	return withSession(deps, func(c *gin.Context, session *sessionManager.Session) (*playback.SeekPlan, error) {
		var req types.SignalRequest
		if !types.BindJSONOrError(c, &req) {
			return nil, errResponded
		}
		kind, err := playback.ParseSignalKind(req.Kind)
		if err != nil {
			types.SendBadRequest(c, err.Error())
			return nil, errResponded
		}
		return session.Player.Dispatch(playback.Signal{
			Kind:      kind,
			Seq:       req.Seq,
			LocalTime: req.LocalTime,
			Err:       req.Error,
		})
	})
}

// Retry re-issues a seek whose segment failed to load
// @Summary      Retry load
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.SessionResponse
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Failure      409 {object} types.ErrorResponse "Nothing to retry or retry limit reached"
// @Router       /api/v1/sessions/{id}/retry [post]
func Retry(deps *types.Dependencies) gin.HandlerFunc {
	return withSession(deps, func(c *gin.Context, session *sessionManager.Session) (*playback.SeekPlan, error) {
		plan, err := session.Player.Retry()
		if err != nil {
			return nil, err
		}
		return &plan, nil
	})
}

// RefreshAnnotations reloads the session's annotations from the store
// @Summary      Refresh annotations
// @Description  Pick up annotations created or edited since the session started. A selection that no longer exists is cleared.
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.SessionResponse
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/annotations/refresh [post]
func RefreshAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := deps.Sessions.RefreshAnnotations(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		c.JSON(http.StatusOK, types.NewSessionResponse(session, nil))
	}
}
