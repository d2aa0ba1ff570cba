package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestOptionalFloat(t *testing.T) {
	tests := []struct {
		in      string
		want    *float64
		wantErr bool
	}{
		{in: ""},
		{in: "12.5", want: func() *float64 { f := 12.5; return &f }()},
		{in: "cheap", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "nan", wantErr: true},
		{in: "Inf", wantErr: true},
		{in: "-Infinity", wantErr: true},
		{in: "1e400", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := OptionalFloat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInt32AndInt64Params(t *testing.T) {
	n, err := Int32Param("")
	require.NoError(t, err)
	assert.Equal(t, int32(0), n)

	n, err = Int32Param("25")
	require.NoError(t, err)
	assert.Equal(t, int32(25), n)

	_, err = Int32Param("3000000000")
	assert.Error(t, err)

	id, err := OptionalInt64("")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = OptionalInt64("7")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(7), *id)
}

func TestPathID(t *testing.T) {
	tests := []struct {
		path    string
		want    int64
		wantErr error
	}{
		{path: "/items/42", want: 42},
		{path: "/items/0", wantErr: ErrNotPositive},
		{path: "/items/-3", wantErr: ErrNotPositive},
		{path: "/items/abc"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var (
				got int64
				err error
			)
			r := chi.NewRouter()
			r.Get("/items/{id}", func(w http.ResponseWriter, req *http.Request) {
				got, err = PathID(req, "id")
			})
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			switch {
			case tt.want > 0:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.Error(t, err)
			}
		})
	}
}

func TestRespond(t *testing.T) {
	rec := httptest.NewRecorder()
	Respond(rec, http.StatusCreated, map[string]int{"id": 3}, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":3}`, rec.Body.String())

	rec = httptest.NewRecorder()
	Respond(rec, http.StatusOK, nil, status.Error(codes.FailedPrecondition, "cycle at category 5"))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cycle at category 5", body.Error)
	assert.Equal(t, "FailedPrecondition", body.Code)
}
