package domain_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/makeca/make-ca/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateEntityName_Valid(t *testing.T) {
	for _, name := range []string{"user", "user-profile", "order2", "a-b-c", "v2-token"} {
		assert.NoError(t, domain.ValidateEntityName(name), name)
	}
}

func TestValidateEntityName_Invalid(t *testing.T) {
	tests := map[string]string{
		"":                      "must not be empty",
		"User":                  "is invalid",
		"user_profile":          "is invalid",
		"2user":                 "is invalid",
		"user-":                 "is invalid",
		"user--x":               "is invalid",
		"user profile":          "is invalid",
		strings.Repeat("a", 65): "longer than 64",
	}
	for name, want := range tests {
		err := domain.ValidateEntityName(name)
		if assert.Error(t, err, name) {
			assert.Contains(t, err.Error(), want, name)
			assert.True(t, domain.IsKind(err, domain.KindInvalidEntity), name)
		}
	}
}

func TestValidateEntityName_MaxLength(t *testing.T) {
	assert.NoError(t, domain.ValidateEntityName(strings.Repeat("a", domain.MaxEntityNameLength)))

	err := domain.ValidateEntityName(strings.Repeat("a", domain.MaxEntityNameLength+1))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "longer than "+strconv.Itoa(domain.MaxEntityNameLength))
	}
}

func TestNormalizeEntityName(t *testing.T) {
	assert.Equal(t, "user-profile", domain.NormalizeEntityName("  User-Profile \n"))
}

func TestUserError(t *testing.T) {
	err := domain.NewUserError(domain.KindNotInitialized, "not initialized", "make-ca init")
	ue, ok := domain.AsUserError(err)
	assert.True(t, ok)
	assert.Equal(t, "make-ca init", ue.Hint)
	assert.Equal(t, "not initialized", err.Error())

	_, ok = domain.AsUserError(assert.AnError)
	assert.False(t, ok)
}

func TestGenerateReport(t *testing.T) {
	r := domain.GenerateReport{Layers: []domain.LayerResult{
		{Layer: domain.LayerDomain, Files: []string{"a", "b"}},
		{Layer: domain.LayerService, Skipped: true},
		{Layer: domain.LayerInfrastructure, Files: []string{"c"}, Error: "boom"},
	}}
	assert.True(t, r.Failed())
	assert.Equal(t, 3, r.FileCount())
	assert.Equal(t, []domain.Layer{domain.LayerDomain}, r.GeneratedLayers())
}
