package monday

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// FAKE API
// ============================================================================

type recordedRequest struct {
	Query     string
	Variables map[string]any
	Header    http.Header
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	respond  func(req recordedRequest) (int, string)
}

func newFakeAPI(t *testing.T, respond func(req recordedRequest) (int, string)) (*Client, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{respond: respond}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body gqlRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rec := recordedRequest{Query: body.Query, Variables: body.Variables, Header: r.Header.Clone()}
		api.mu.Lock()
		api.requests = append(api.requests, rec)
		api.mu.Unlock()

		status, payload := api.respond(rec)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Options{URL: srv.URL, Token: "secret-token", APIVersion: "2024-10", Timeout: 5 * time.Second})
	return client, api
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeAPI) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func gqlData(data string) (int, string) {
	return http.StatusOK, `{"data":` + data + `}`
}

// ============================================================================
// TRANSPORT
// ============================================================================

func TestClient_SendsHeaders(t *testing.T) {
	client, api := newFakeAPI(t, func(recordedRequest) (int, string) {
		return gqlData(`{"boards":[]}`)
	})

	res := client.ListBoards(context.Background())
	require.True(t, res.Success, res.Error)

	req := api.last()
	assert.Equal(t, "secret-token", req.Header.Get("Authorization"))
	assert.Equal(t, "2024-10", req.Header.Get("API-Version"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantSubstr string
		permission bool
	}{
		{"graphql error", http.StatusOK, `{"errors":[{"message":"Parse error on \"}\""}]}`, "Parse error", false},
		{"permission error", http.StatusOK, `{"errors":[{"message":"User unauthorized to perform action"}]}`, "permission denied", true},
		{"http 401", http.StatusUnauthorized, `not allowed`, "permission denied", true},
		{"http 500", http.StatusInternalServerError, `boom`, "status 500", false},
		{"bad json", http.StatusOK, `<html>`, "failed to decode response", false},
		{"flat error message", http.StatusOK, `{"error_message":"Complexity budget exhausted"}`, "Complexity budget", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newFakeAPI(t, func(recordedRequest) (int, string) {
				return tt.status, tt.body
			})

			res := client.GetBoardColumns(context.Background(), "42")
			assert.False(t, res.Success)
			assert.Contains(t, res.Error, tt.wantSubstr)

			err := res.Err()
			require.Error(t, err)
			assert.Equal(t, tt.permission, IsPermission(err))
		})
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	client, _ := newFakeAPI(t, func(recordedRequest) (int, string) {
		return gqlData(`{"boards":[]}`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := client.ListBoards(ctx)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestClient_ValidationBeforeRequest(t *testing.T) {
	client, api := newFakeAPI(t, func(recordedRequest) (int, string) {
		return gqlData(`{}`)
	})
	ctx := context.Background()

	assert.False(t, client.GetBoardColumns(ctx, " ").Success)
	assert.False(t, client.ListItems(ctx, "").Success)
	assert.False(t, client.SearchItemsByName(ctx, "1", "  ").Success)
	assert.False(t, client.CreateItem(ctx, "1", "", nil).Success)
	assert.False(t, client.CreateItem(ctx, "", "x", nil).Success)
	assert.False(t, client.UpdateItem(ctx, "1", "2", map[string]any{"name": ""}).Success)
	assert.False(t, client.SearchUsers(ctx, "").Success)
	assert.Equal(t, 0, api.count())
}

// ============================================================================
// BOARDS / ITEMS
// ============================================================================

func TestGetBoardColumns(t *testing.T) {
	client, api := newFakeAPI(t, func(recordedRequest) (int, string) {
		return gqlData(`{"boards":[{"id":"42","name":"Deals","columns":[
			{"id":"name","title":"Name","type":"name","settings_str":"{}"},
			{"id":"people","title":"Owner","type":"people","settings_str":"{}"}
		]}]}`)
	})

	res := client.GetBoardColumns(context.Background(), "42")
	require.True(t, res.Success, res.Error)
	assert.Equal(t, "Deals", res.Data.Name)
	require.Len(t, res.Data.Columns, 2)
	assert.Equal(t, "people", res.Data.Columns[1].Type)
	assert.Equal(t, []any{"42"}, api.last().Variables["ids"])
}

func TestGetBoardColumns_NotFound(t *testing.T) {
	client, _ := newFakeAPI(t, func(recordedRequest) (int, string) {
		return gqlData(`{"boards":[]}`)
	})
	res := client.GetBoardColumns(context.Background(), "42")
	assert.False(t, res.Success)
	assert.False(t, IsPermission(res.Err()))
}

func TestListItems_ColumnValueDecoding(t *testing.T) {
	client, _ := newFakeAPI(t, func(recordedRequest) (int, string) {
		return gqlData(`{"boards":[{"id":"7","name":"Layouts","items_page":{"items":[{
			"id":"100","name":"Details","column_values":[
				{"id":"long","text":"{\"fields\":[]}","value":"{\"text\":\"{\\\"fields\\\":[]}\"}","type":"long_text","column":{"id":"long","title":"Fields","type":"long_text"}},
				{"id":"num","text":null,"value":null,"type":"numbers"},
				{"id":"rel","text":"","value":{"linkedPulseIds":[]},"type":"board_relation","linked_item_ids":["1","2"],"display_value":"A, B"}
			]}]}}]}`)
	})

	res := client.ListItems(context.Background(), "7")
	require.True(t, res.Success, res.Error)
	require.Len(t, res.Data, 1)

	item := res.Data[0]
	assert.Equal(t, "7", item.BoardID)
	assert.Equal(t, "Layouts", item.BoardName)

	long, ok := item.ValueByColumnID("long")
	require.True(t, ok)
	assert.Equal(t, `{"text":"{\"fields\":[]}"}`, long.Value)
	assert.Equal(t, "Fields", long.ColumnTitle)

	num, _ := item.ValueByColumnID("num")
	assert.Empty(t, num.Text)
	assert.Empty(t, num.Value)

	rel, _ := item.ValueByColumnID("rel")
	assert.Equal(t, `{"linkedPulseIds":[]}`, rel.Value)
	assert.Equal(t, []string{"1", "2"}, rel.LinkedItemIDs)
	assert.Equal(t, "A, B", rel.DisplayValue)
}

func TestSearchItemsByName_EscapesQuotes(t *testing.T) {
	client, api := newFakeAPI(t, func(recordedRequest) (int, string) {
		return gqlData(`{"boards":[{"id":"7","name":"B","items_page":{"items":[]}}]}`)
	})

	res := client.SearchItemsByName(context.Background(), "7", `say "hi"`)
	require.True(t, res.Success, res.Error)
	assert.NotNil(t, res.Data)

	q := api.last().Query
	assert.Contains(t, q, `compare_value: ["say \"hi\""]`)
	assert.Contains(t, q, "contains_text")
	assert.Contains(t, q, "limit: 100")
}

func TestListItemsAcrossBoards_SettlesAll(t *testing.T) {
	client, _ := newFakeAPI(t, func(req recordedRequest) (int, string) {
		ids := req.Variables["ids"].([]any)
		switch ids[0] {
		case "1":
			return gqlData(`{"boards":[{"id":"1","name":"One","items_page":{"items":[{"id":"a","name":"A","column_values":[]}]}}]}`)
		case "2":
			return gqlData(`{"errors":[{"message":"Internal error"}]}`)
		default:
			return gqlData(`{"boards":[{"id":"3","name":"Three","items_page":{"items":[{"id":"c","name":"C","column_values":[]}]}}]}`)
		}
	})

	res := client.ListItemsAcrossBoards(context.Background(), []string{"1", "2", "3"})
	require.True(t, res.Success)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "One", res.Data[0].BoardName)
	assert.Equal(t, "Three", res.Data[1].BoardName)
	assert.Contains(t, res.Error, "board 2")
}

func TestListItemsAcrossBoards_AllFailed(t *testing.T) {
	client, _ := newFakeAPI(t, func(recordedRequest) (int, string) {
		return http.StatusBadGateway, "down"
	})

	res := client.ListItemsAcrossBoards(context.Background(), []string{"1", "2"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "board 1")
	assert.Contains(t, res.Error, "board 2")
}

func TestCreateItem(t *testing.T) {
	client, api := newFakeAPI(t, func(recordedRequest) (int, string) {
		return gqlData(`{"create_item":{"id":"555","name":"Row"}}`)
	})

	res := client.CreateItem(context.Background(), "7", "Row", map[string]any{"num": 3})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, "555", res.Data.ID)
	assert.Equal(t, "7", res.Data.BoardID)

	vars := api.last().Variables
	assert.Equal(t, "Row", vars["name"])
	assert.JSONEq(t, `{"num":3}`, vars["values"].(string))
}

func TestUpdateItem_Rename(t *testing.T) {
	client, api := newFakeAPI(t, func(recordedRequest) (int, string) {
		return gqlData(`{"change_multiple_column_values":{"id":"9"}}`)
	})

	res := client.UpdateItem(context.Background(), "7", "9", map[string]any{"name": "New title"})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, "9", res.Data)
	assert.JSONEq(t, `{"name":"New title"}`, api.last().Variables["values"].(string))
}

func TestDeleteItems_SingleAliasedMutation(t *testing.T) {
	client, api := newFakeAPI(t, func(recordedRequest) (int, string) {
		return gqlData(`{"d0":{"id":"10"},"d1":{"id":"11"}}`)
	})

	res := client.DeleteItems(context.Background(), []string{"10", "11"})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, []string{"10", "11"}, res.Data)
	assert.Equal(t, 1, api.count())

	req := api.last()
	assert.Equal(t, 2, strings.Count(req.Query, "delete_item("))
	assert.Equal(t, "11", req.Variables["i1"])
}

func TestDeleteItems_PartialFailureFailsBatch(t *testing.T) {
	client, _ := newFakeAPI(t, func(recordedRequest) (int, string) {
		return gqlData(`{"d0":{"id":"10"},"d1":null}`)
	})

	res := client.DeleteItems(context.Background(), []string{"10", "11"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "1 of 2")
}

func TestDeleteItems_EmptyIsNoop(t *testing.T) {
	client, api := newFakeAPI(t, func(recordedRequest) (int, string) {
		return gqlData(`{}`)
	})
	res := client.DeleteItems(context.Background(), nil)
	assert.True(t, res.Success)
	assert.Equal(t, 0, api.count())
}

// ============================================================================
// USERS / TEAMS
// ============================================================================

func TestSearchUsers_FiltersLocally(t *testing.T) {
	client, _ := newFakeAPI(t, func(recordedRequest) (int, string) {
		return gqlData(`{"users":[
			{"id":"1","name":"Ada Lovelace","email":"ada@example.com"},
			{"id":"2","name":"Grace","email":"HOPPER@example.com"},
			{"id":"3","name":"Linus","email":"linus@example.com"}
		]}`)
	})

	res := client.SearchUsers(context.Background(), "hopper")
	require.True(t, res.Success, res.Error)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "2", res.Data[0].ID)
}

func TestListTeams(t *testing.T) {
	client, _ := newFakeAPI(t, func(recordedRequest) (int, string) {
		return gqlData(`{"teams":[{"id":"t1","name":"Ops","users":[{"id":"1","name":"Ada"}]}]}`)
	})

	res := client.ListTeams(context.Background())
	require.True(t, res.Success, res.Error)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Ops", res.Data[0].Name)
	assert.Len(t, res.Data[0].Users, 1)
}
