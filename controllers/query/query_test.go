package querycontroller_test

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

	querycontroller "github.com/sarnali3515/query-nest-server/controllers/query"
	"github.com/sarnali3515/query-nest-server/models"
	"github.com/sarnali3515/query-nest-server/store"
)

func newQueryRouter(queries store.QueryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/queries", querycontroller.GetQueries(queries))
	r.GET("/queries/:email", querycontroller.GetQueriesByOwner(queries))
	r.GET("/query/:id", querycontroller.GetQueryByID(queries))
	r.POST("/queries", querycontroller.CreateQuery(queries))
	r.PUT("/query/:id", querycontroller.UpdateQuery(queries))
	r.DELETE("/query/:id", querycontroller.DeleteQuery(queries))
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

func TestCreateAndListNewestFirst(t *testing.T) {
	queries := &store.MemQueryStore{}
	r := newQueryRouter(queries)

	first := doJSON(r, http.MethodPost, "/queries", `{"userEmail":"a@x.com","productName":"P1","queryTitle":"old"}`)
	require.Equal(t, http.StatusOK, first.Code)
	second := doJSON(r, http.MethodPost, "/queries", `{"userEmail":"a@x.com","productName":"P2","queryTitle":"new"}`)
	require.Equal(t, http.StatusOK, second.Code)

	res := doJSON(r, http.MethodGet, "/queries", "")
	require.Equal(t, http.StatusOK, res.Code)

	var list []models.Query
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].QueryTitle)
	assert.Equal(t, "old", list[1].QueryTitle)
	assert.EqualValues(t, 0, list[0].RecommendationCount)
}

func TestListByOwnerFiltersAndOrders(t *testing.T) {
	queries := &store.MemQueryStore{}
	r := newQueryRouter(queries)

	doJSON(r, http.MethodPost, "/queries", `{"userEmail":"a@x.com","queryTitle":"mine-old"}`)
	doJSON(r, http.MethodPost, "/queries", `{"userEmail":"b@x.com","queryTitle":"theirs"}`)
	doJSON(r, http.MethodPost, "/queries", `{"userEmail":"a@x.com","queryTitle":"mine-new"}`)

	res := doJSON(r, http.MethodGet, "/queries/a@x.com", "")
	require.Equal(t, http.StatusOK, res.Code)

	var list []models.Query
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "mine-new", list[0].QueryTitle)
	assert.Equal(t, "mine-old", list[1].QueryTitle)
}

func TestUpsertCreatesMissingDocument(t *testing.T) {
	queries := &store.MemQueryStore{}
	r := newQueryRouter(queries)

	id := primitive.NewObjectID()
	res := doJSON(r, http.MethodPut, "/query/"+id.Hex(), `{"userEmail":"a@x.com","queryTitle":"fresh"}`)
	require.Equal(t, http.StatusOK, res.Code)

	var result store.UpsertResult
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &result))
	assert.EqualValues(t, 0, result.MatchedCount)
	assert.NotNil(t, result.UpsertedID)

	created, err := queries.ByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "fresh", created.QueryTitle)
	assert.Equal(t, "a@x.com", created.UserEmail)
}

func TestUpsertPreservesRecommendationCount(t *testing.T) {
	queries := &store.MemQueryStore{}
	r := newQueryRouter(queries)

	id, err := queries.Insert(context.Background(), models.Query{
		UserEmail:  "a@x.com",
		QueryTitle: "before",
	})
	require.NoError(t, err)
	_, err = queries.AdjustRecommendationCount(context.Background(), id, 2)
	require.NoError(t, err)

	res := doJSON(r, http.MethodPut, "/query/"+id.Hex(), `{"queryTitle":"after"}`)
	require.Equal(t, http.StatusOK, res.Code)

	updated, err := queries.ByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "after", updated.QueryTitle)
	assert.Equal(t, "a@x.com", updated.UserEmail)
	assert.EqualValues(t, 2, updated.RecommendationCount)
}

func TestGetQueryByID(t *testing.T) {
	queries := &store.MemQueryStore{}
	r := newQueryRouter(queries)

	id, err := queries.Insert(context.Background(), models.Query{QueryTitle: "here"})
	require.NoError(t, err)

	res := doJSON(r, http.MethodGet, "/query/"+id.Hex(), "")
	require.Equal(t, http.StatusOK, res.Code)

	var q models.Query
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &q))
	assert.Equal(t, "here", q.QueryTitle)

	res = doJSON(r, http.MethodGet, "/query/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = doJSON(r, http.MethodGet, "/query/not-a-hex-id", "")
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestDeleteQueryReportsDeletedCount(t *testing.T) {
	queries := &store.MemQueryStore{}
	r := newQueryRouter(queries)

	id, err := queries.Insert(context.Background(), models.Query{QueryTitle: "doomed"})
	require.NoError(t, err)

	res := doJSON(r, http.MethodDelete, "/query/"+id.Hex(), "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, res.Body.String())

	// A repeat delete silently reports zero affected documents.
	res = doJSON(r, http.MethodDelete, "/query/"+id.Hex(), "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, res.Body.String())
}

func TestListEmptyIsJSONArray(t *testing.T) {
	r := newQueryRouter(&store.MemQueryStore{})

	res := doJSON(r, http.MethodGet, "/queries", "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "[]", strings.TrimSpace(res.Body.String()))
}
