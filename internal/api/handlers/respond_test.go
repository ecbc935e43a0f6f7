package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Count *int   `json:"count" validate:"required,gte=1"`
}

func TestDecodeAndValidate(t *testing.T) {
	cases := map[string]struct {
		body    string
		wantErr bool
	}{
		"Valid":          {`{"name":"ทดสอบ","count":2}`, false},
		"Missing name":   {`{"count":2}`, true},
		"Zero count":     {`{"name":"x","count":0}`, true},
		"Malformed json": {`{"name":`, true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var dst sample
			err := DecodeAndValidate(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body)), &dst)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, *dst.Count)
		})
	}
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"เกิดข้อผิดพลาดในระบบ"}`, rec.Body.String())
}

func TestQueryInt(t *testing.T) {
	n, err := QueryInt(httptest.NewRequest(http.MethodGet, "/?days=4", nil), "days")
	require.NoError(t, err)
	assert.Equal(t, 4, *n)

	n, err = QueryInt(httptest.NewRequest(http.MethodGet, "/", nil), "days")
	require.NoError(t, err)
	assert.Nil(t, n)

	_, err = QueryInt(httptest.NewRequest(http.MethodGet, "/?days=many", nil), "days")
	assert.Error(t, err)
}
