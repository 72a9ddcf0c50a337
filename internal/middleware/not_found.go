package middleware

import (
	"fmt"
	"net/http"

	"github.com/Zafert/pointr-challenge/internal/constants"
	"github.com/Zafert/pointr-challenge/internal/dtos"
	"github.com/Zafert/pointr-challenge/internal/utils"
)

// NotFoundHandler answers any request that matched no route, including a
// known path with an unsupported method.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusNotFound, dtos.RouteErrorResponse{
			Error:   constants.MsgRouteNotFoundTitle,
			Message: fmt.Sprintf("Route %s not found", r.URL.RequestURI()),
		})
	})
}
