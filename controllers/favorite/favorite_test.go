package favoritecontroller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	favoritecontroller "github.com/sarnali3515/query-nest-server/controllers/favorite"
	"github.com/sarnali3515/query-nest-server/models"
	"github.com/sarnali3515/query-nest-server/store"
)

func newFavoriteRouter(favorites store.FavoriteStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/favorites", favoritecontroller.CreateFavorite(favorites))
	r.GET("/favorites", favoritecontroller.GetFavorites(favorites))
	r.GET("/favorites/:email", favoritecontroller.GetFavoritesByOwner(favorites))
	r.DELETE("/favorite/:id", favoritecontroller.DeleteFavorite(favorites))
	return r
}

func doJSON(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)
	return res
}

func TestCreateAndListFavoritesNewestFirst(t *testing.T) {
	favorites := &store.MemFavoriteStore{}
	r := newFavoriteRouter(favorites)

	res := doJSON(r, http.MethodPost, "/favorites", `{"userEmail":"a@x.com","queryTitle":"old"}`)
	require.Equal(t, http.StatusOK, res.Code)
	res = doJSON(r, http.MethodPost, "/favorites", `{"userEmail":"a@x.com","queryTitle":"new"}`)
	require.Equal(t, http.StatusOK, res.Code)

	res = doJSON(r, http.MethodGet, "/favorites", "")
	require.Equal(t, http.StatusOK, res.Code)

	var list []models.Favorite
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].QueryTitle)
	assert.Equal(t, "old", list[1].QueryTitle)
}

func TestListFavoritesByOwner(t *testing.T) {
	favorites := &store.MemFavoriteStore{}
	r := newFavoriteRouter(favorites)

	doJSON(r, http.MethodPost, "/favorites", `{"userEmail":"a@x.com","queryTitle":"mine"}`)
	doJSON(r, http.MethodPost, "/favorites", `{"userEmail":"b@x.com","queryTitle":"theirs"}`)

	res := doJSON(r, http.MethodGet, "/favorites/a@x.com", "")
	require.Equal(t, http.StatusOK, res.Code)

	var list []models.Favorite
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "mine", list[0].QueryTitle)
}

func TestDeleteFavorite(t *testing.T) {
	favorites := &store.MemFavoriteStore{}
	r := newFavoriteRouter(favorites)

	id, err := favorites.Insert(context.Background(), models.Favorite{UserEmail: "a@x.com"})
	require.NoError(t, err)

	res := doJSON(r, http.MethodDelete, "/favorite/"+id.Hex(), "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, res.Body.String())

	res = doJSON(r, http.MethodDelete, "/favorite/"+primitive.NewObjectID().Hex(), "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, res.Body.String())

	res = doJSON(r, http.MethodDelete, "/favorite/not-hex", "")
	assert.Equal(t, http.StatusBadRequest, res.Code)
}
