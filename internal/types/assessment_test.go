package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSaveLikertRequest_Validate(t *testing.T) {
	valid := SaveLikertRequest{
		Section: "core",
		Items:   []LikertItemInput{{ItemID: "sm_1", Value: 4}},
	}
	require.NoError(t, valid.Validate())

	t.Run("unknown section", func(t *testing.T) {
		r := valid
		r.Section = "personality"
		assert.Error(t, r.Validate())
	})

	t.Run("empty items", func(t *testing.T) {
		r := SaveLikertRequest{Section: "core", Items: []LikertItemInput{}}
		assert.Error(t, r.Validate())
	})

	t.Run("value out of range", func(t *testing.T) {
		for _, v := range []int{0, 6, -1} {
			r := SaveLikertRequest{
				Section: "bigfive",
				Items:   []LikertItemInput{{ItemID: "bf_e1", Value: v}},
			}
			assert.Error(t, r.Validate(), "value %d should be rejected", v)
		}
	})

	t.Run("missing item id", func(t *testing.T) {
		r := SaveLikertRequest{Section: "core", Items: []LikertItemInput{{Value: 3}}}
		assert.Error(t, r.Validate())
	})
}

func TestSaveIkigaiRequest_Validate(t *testing.T) {
	valid := SaveIkigaiRequest{
		Items: []IkigaiItemInput{{Circle: "love", Text: "ensinar", Rank: 1}},
	}
	require.NoError(t, valid.Validate())

	t.Run("unknown circle", func(t *testing.T) {
		r := SaveIkigaiRequest{Items: []IkigaiItemInput{{Circle: "money", Text: "x", Rank: 1}}}
		assert.Error(t, r.Validate())
	})

	t.Run("rank out of range", func(t *testing.T) {
		r := SaveIkigaiRequest{Items: []IkigaiItemInput{{Circle: "love", Text: "x", Rank: 6}}}
		assert.Error(t, r.Validate())
	})

	t.Run("empty text", func(t *testing.T) {
		r := SaveIkigaiRequest{Items: []IkigaiItemInput{{Circle: "love", Text: "", Rank: 1}}}
		assert.Error(t, r.Validate())
	})
}

func TestSaveChoicesRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SaveChoicesRequest{}).Validate(), "nil zone is a valid partial save")
	assert.NoError(t, (&SaveChoicesRequest{ChosenZone: strPtr("mission")}).Validate())
	assert.NoError(t, (&SaveChoicesRequest{ChosenZone: strPtr("passion"), ChosenFocus: strPtr("Mentoria de carreira")}).Validate())
	assert.NoError(t, (&SaveChoicesRequest{ChosenFocus: strPtr("Mentoria de carreira")}).Validate(), "focus alone is a valid partial save")
	assert.Error(t, (&SaveChoicesRequest{ChosenZone: strPtr("hobby")}).Validate())
	assert.Error(t, (&SaveChoicesRequest{ChosenZone: strPtr("")}).Validate())
	assert.Error(t, (&SaveChoicesRequest{ChosenFocus: strPtr("")}).Validate())
}

func TestSavePlan90DRequest_Validate(t *testing.T) {
	require.NoError(t, (&SavePlan90DRequest{}).Validate(), "all-nil partial save is valid")

	full := SavePlan90DRequest{
		CycleObjective:  strPtr("Validar hipótese de liderança"),
		Checkpoint1Date: strPtr("2026-09-24"),
		Selected70:      []string{"Liderar um projeto", "Apresentar para diretoria"},
		Selected20:      []string{"Curso de facilitação"},
		Selected10:      []string{"Shadowing em outra área"},
	}
	require.NoError(t, full.Validate())

	t.Run("bad date format", func(t *testing.T) {
		r := SavePlan90DRequest{Checkpoint2Date: strPtr("24/09/2026")}
		assert.Error(t, r.Validate())
	})

	t.Run("selection caps", func(t *testing.T) {
		r := SavePlan90DRequest{Selected70: []string{"a", "b", "c"}}
		assert.Error(t, r.Validate(), "70 block allows at most 2 selections")

		r = SavePlan90DRequest{Selected10: []string{"a", "b"}}
		assert.Error(t, r.Validate(), "10 block allows at most 1 selection")
	})
}

func TestAuthRequests_Validate(t *testing.T) {
	valid := CreateUserRequest{Name: "Ana", Email: "ana@example.com", Password: "longenough"}
	require.NoError(t, valid.Validate())

	t.Run("short password", func(t *testing.T) {
		r := valid
		r.Password = "short"
		assert.Error(t, r.Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		r := valid
		r.Email = "not-an-email"
		assert.Error(t, r.Validate())
	})

	t.Run("login requires both fields", func(t *testing.T) {
		assert.Error(t, (&LoginRequest{Email: "ana@example.com"}).Validate())
		assert.Error(t, (&LoginRequest{Password: "x"}).Validate())
		assert.NoError(t, (&LoginRequest{Email: "ana@example.com", Password: "x"}).Validate())
	})
}

func TestConsentRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ConsentRequest{Version: "v1.0"}).Validate())
	assert.Error(t, (&ConsentRequest{}).Validate())
}
