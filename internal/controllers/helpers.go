package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Zafert/pointr-challenge/internal/constants"
	"github.com/Zafert/pointr-challenge/internal/utils"
	"github.com/gorilla/mux"
)

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched
// so the caller's validation reports missing fields. On failure a 400 has
// already been written and false is returned.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxRequestBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, constants.MsgInvalidJSON, nil, err)
	return false
}

func pathID(r *http.Request) string {
	return mux.Vars(r)["id"]
}
