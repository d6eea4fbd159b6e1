package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	type createdBody struct {
		TempID  string `json:"temp_id"`
		Created bool   `json:"created"`
	}

	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "created record",
			data:     createdBody{TempID: "t-1", Created: true},
			status:   http.StatusCreated,
			wantBody: `{"temp_id":"t-1","created":true}`,
		},
		{
			name:     "replayed record",
			data:     createdBody{TempID: "t-1"},
			status:   http.StatusOK,
			wantBody: `{"temp_id":"t-1","created":false}`,
		},
		{
			name:     "collection envelope",
			data:     map[string][]int{"data": {10, 11}},
			status:   http.StatusOK,
			wantBody: `{"data":[10,11]}`,
		},
		{
			name:     "nil",
			data:     nil,
			status:   http.StatusOK,
			wantBody: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	// канал не сериализуется в JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "cadet introuvable", http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"cadet introuvable"}`, w.Body.String())
}
