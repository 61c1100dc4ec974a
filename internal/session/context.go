// Package session holds the per-browser client state of the console: admin
// and customer tokens, the signed-in identity, and checkout progress.
package session

import (
	"encoding/json"
	"maps"
	"strings"

	"github.com/google/uuid"

	"console/internal/domain/models"
)

const (
	KeyAdminToken       = "adminToken"
	KeyAdminData        = "adminData"
	KeyToken            = "token"
	KeyUser             = "user"
	KeySelectedSeatIDs  = "selectedSeatIds"
	KeyPaymentReference = "paymentReference"
)

// Context is one session's key/value state with typed accessors. It is owned
// by a single request at a time.
type Context struct {
	id     string
	values map[string]string
	dirty  bool
	isNew  bool
}

// New starts an empty session under a fresh random id.
func New() *Context {
	return &Context{id: uuid.NewString(), values: map[string]string{}, isNew: true}
}

// Restore rebuilds a session loaded from a Store.
func Restore(id string, values map[string]string) *Context {
	if values == nil {
		values = map[string]string{}
	}
	return &Context{id: id, values: values}
}

func (s *Context) ID() string  { return s.id }
func (s *Context) Dirty() bool { return s.dirty }
func (s *Context) IsNew() bool { return s.isNew }
func (s *Context) Empty() bool { return len(s.values) == 0 }

// MarkClean records that the current state has been persisted.
func (s *Context) MarkClean() {
	s.dirty = false
	s.isNew = false
}

// Values is a copy of the raw key/value state.
func (s *Context) Values() map[string]string {
	return maps.Clone(s.values)
}

func (s *Context) Get(key string) string {
	return s.values[key]
}

func (s *Context) Set(key, value string) {
	if cur, ok := s.values[key]; ok && cur == value {
		return
	}
	s.values[key] = value
	s.dirty = true
}

func (s *Context) Delete(keys ...string) {
	for _, k := range keys {
		if _, ok := s.values[k]; ok {
			delete(s.values, k)
			s.dirty = true
		}
	}
}

// AdminToken is the bearer token of the signed-in admin.
func (s *Context) AdminToken() string {
	return s.Get(KeyAdminToken)
}

// AdminData is the admin profile exactly as the backend returned it.
func (s *Context) AdminData() json.RawMessage {
	if v := s.Get(KeyAdminData); v != "" {
		return json.RawMessage(v)
	}
	return nil
}

// Admin decodes the stored admin profile.
func (s *Context) Admin() (models.Admin, bool) {
	raw := s.Get(KeyAdminData)
	if raw == "" {
		return models.Admin{}, false
	}
	var a models.Admin
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return models.Admin{}, false
	}
	return a, true
}

func (s *Context) SetAdmin(token string, profile json.RawMessage) {
	s.Set(KeyAdminToken, token)
	if len(profile) > 0 {
		s.Set(KeyAdminData, string(profile))
	}
}

func (s *Context) ClearAdmin() {
	s.Delete(KeyAdminToken, KeyAdminData)
}

// UserToken is the bearer token of the signed-in customer.
func (s *Context) UserToken() string {
	return s.Get(KeyToken)
}

// User decodes the stored customer profile.
func (s *Context) User() (models.User, bool) {
	raw := s.Get(KeyUser)
	if raw == "" {
		return models.User{}, false
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return models.User{}, false
	}
	return u, true
}

func (s *Context) SetUser(token string, profile json.RawMessage) {
	s.Set(KeyToken, token)
	if len(profile) > 0 {
		s.Set(KeyUser, string(profile))
	}
}

func (s *Context) ClearUser() {
	s.Delete(KeyToken, KeyUser)
}

// SelectedSeatIDs is the seat selection of the checkout in progress. A value
// stored as a bare string instead of a list is read as a one-element list.
func (s *Context) SelectedSeatIDs() []string {
	raw := strings.TrimSpace(s.Get(KeySelectedSeatIDs))
	if raw == "" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err == nil {
		return ids
	}
	var one string
	if err := json.Unmarshal([]byte(raw), &one); err == nil {
		return []string{one}
	}
	return []string{raw}
}

func (s *Context) SetSelectedSeatIDs(ids []string) {
	data, _ := json.Marshal(ids)
	s.Set(KeySelectedSeatIDs, string(data))
}

func (s *Context) ClearSelectedSeatIDs() {
	s.Delete(KeySelectedSeatIDs)
}

func (s *Context) PaymentReference() string {
	return s.Get(KeyPaymentReference)
}

func (s *Context) SetPaymentReference(ref string) {
	s.Set(KeyPaymentReference, ref)
}
