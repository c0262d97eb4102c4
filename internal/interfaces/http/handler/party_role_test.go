package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	partyapp "github.com/partyhub/backend/internal/application/party"
	"github.com/partyhub/backend/internal/domain/identity"
	"github.com/partyhub/backend/internal/domain/party"
	"github.com/partyhub/backend/internal/domain/shared"
	"github.com/partyhub/backend/internal/infrastructure/persistence"
	"github.com/partyhub/backend/internal/interfaces/http/dto"
)

// anyScopes matches any scope slice on a mocked store call.
func anyScopes() any {
	return mock.MatchedBy(func([]persistence.Scope) bool { return true })
}

type partyRoleFixture struct {
	handler *PartyRoleHandler
	roles   *mockStore[party.PartyRole]
	router  *gin.Engine
}

// newPartyRoleFixture wires the handler behind routes that stamp the
// given principal onto the context, standing in for the JWT middleware.
func newPartyRoleFixture(principalID int64) partyRoleFixture {
	roles := new(mockStore[party.PartyRole])
	h := NewPartyRoleHandler(partyapp.NewPartyRoleService(roles))

	router := gin.New()
	if principalID > 0 {
		router.Use(func(c *gin.Context) {
			setPrincipal(c, principalID, identity.RolePersonUser)
		})
	}
	router.POST("/party_role", h.Create)
	router.GET("/party_role", h.List)
	router.GET("/party_role/:id", h.Get)
	router.PUT("/party_role/:id", h.Update)
	router.DELETE("/party_role/:id", h.Delete)

	return partyRoleFixture{handler: h, roles: roles, router: router}
}

func TestPartyRoleHandlerRequiresPrincipal(t *testing.T) {
	f := newPartyRoleFixture(0)

	paths := []struct {
		method string
		path   string
	}{
		{"POST", "/party_role"},
		{"GET", "/party_role"},
		{"GET", "/party_role/1"},
		{"PUT", "/party_role/1"},
		{"DELETE", "/party_role/1"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(p.method, p.path, nil)
			f.router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var resp dto.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error.Code)
		})
	}
	f.roles.AssertNotCalled(t, "Create")
	f.roles.AssertNotCalled(t, "List")
}

func TestPartyRoleHandlerCreate(t *testing.T) {
	f := newPartyRoleFixture(42)

	f.roles.On("Create", mock.Anything, mock.MatchedBy(func(r *party.PartyRole) bool {
		return r.PartyID == 42 && r.Note != nil && *r.Note == "primary"
	})).Return(nil)

	w := postJSON(t, f.router, "/party_role", gin.H{"note": "primary"})

	assert.Equal(t, http.StatusCreated, w.Code)
	f.roles.AssertExpectations(t)
}

func TestPartyRoleHandlerGet(t *testing.T) {
	t.Run("returns an owned role", func(t *testing.T) {
		f := newPartyRoleFixture(42)

		f.roles.On("Get", mock.Anything, int64(5), anyScopes()).
			Return(&party.PartyRole{PartyID: 42}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/party_role/5", nil)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("a foreign role reads as not found", func(t *testing.T) {
		f := newPartyRoleFixture(42)

		f.roles.On("Get", mock.Anything, int64(5), anyScopes()).
			Return(nil, shared.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/party_role/5", nil)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		f := newPartyRoleFixture(42)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/party_role/abc", nil)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.roles.AssertNotCalled(t, "Get")
	})
}

func TestPartyRoleHandlerUpdate(t *testing.T) {
	t.Run("applies the change set", func(t *testing.T) {
		f := newPartyRoleFixture(42)

		f.roles.On("Update", mock.Anything, int64(5), map[string]any{"note": "updated"}, anyScopes()).
			Return(&party.PartyRole{PartyID: 42}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/party_role/5", jsonBody(t, gin.H{"note": "updated"}))
		req.Header.Set("Content-Type", "application/json")
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("an empty change set is a bad request", func(t *testing.T) {
		f := newPartyRoleFixture(42)

		f.roles.On("Update", mock.Anything, int64(5), map[string]any{}, anyScopes()).
			Return(nil, shared.ErrNoFieldsProvided)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/party_role/5", jsonBody(t, gin.H{}))
		req.Header.Set("Content-Type", "application/json")
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeNoFieldsProvided, resp.Error.Code)
	})
}

func TestPartyRoleHandlerDelete(t *testing.T) {
	f := newPartyRoleFixture(42)

	f.roles.On("Delete", mock.Anything, int64(5), anyScopes()).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/party_role/5", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}
