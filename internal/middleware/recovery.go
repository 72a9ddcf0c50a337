package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/Zafert/pointr-challenge/internal/constants"
	"github.com/Zafert/pointr-challenge/internal/dtos"
	"github.com/Zafert/pointr-challenge/internal/utils"
)

// RecoveryMiddleware turns a panic in any downstream handler into a
// generic 500. The stack goes to the log only.
func RecoveryMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				utils.Logger.WithFields(logrus.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"panic":  fmt.Sprint(rec),
					"stack":  string(debug.Stack()),
				}).Error("Recovered from handler panic")

				utils.RespondWithJSON(w, http.StatusInternalServerError, dtos.RouteErrorResponse{
					Error:   constants.MsgInternalTitle,
					Message: constants.MsgInternalDetail,
				})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
