package authclient_test

import (
	"testing"

	authclient "github.com/goliatone/go-auth-client"
	"github.com/stretchr/testify/assert"
)

func TestLoginRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload authclient.LoginRequest
		valid   bool
	}{
		{"valid", authclient.LoginRequest{Username: "alice", Password: "secret1"}, true},
		{"username too short", authclient.LoginRequest{Username: "al", Password: "secret1"}, false},
		{"password too short", authclient.LoginRequest{Username: "alice", Password: "short"}, false},
		{"missing username", authclient.LoginRequest{Password: "secret1"}, false},
		{"missing password", authclient.LoginRequest{Username: "alice"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	valid := authclient.RegisterRequest{
		Username: "newuser",
		Password: "secret1",
		Email:    "new@example.com",
		Role:     authclient.RoleUser,
	}

	tests := []struct {
		name   string
		mutate func(r *authclient.RegisterRequest)
		valid  bool
	}{
		{"valid user", func(r *authclient.RegisterRequest) {}, true},
		{"valid admin", func(r *authclient.RegisterRequest) { r.Role = authclient.RoleAdmin }, true},
		{"bad email", func(r *authclient.RegisterRequest) { r.Email = "not-an-email" }, false},
		{"missing email", func(r *authclient.RegisterRequest) { r.Email = "" }, false},
		{"unknown role", func(r *authclient.RegisterRequest) { r.Role = authclient.Role("MANAGER") }, false},
		{"missing role", func(r *authclient.RegisterRequest) { r.Role = "" }, false},
		{"short password", func(r *authclient.RegisterRequest) { r.Password = "abc" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := valid
			tt.mutate(&payload)

			err := payload.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
