package ident_test

import (
	"testing"

	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/ident"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameIDDeterministicAndNonZero(t *testing.T) {
	id1 := ident.NameID("field_a")
	id2 := ident.NameID("field_a")
	assert.Equal(t, id1, id2)
	assert.NotZero(t, id1)

	assert.NotEqual(t, ident.NameID("field_a"), ident.NameID("field_b"))
}

func TestFingerprintDeterministicAndOrderSensitive(t *testing.T) {
	members := []ident.Member{{Name: "id", TypeName: "u32"}, {Name: "name", TypeName: "string"}}

	fp1 := ident.Fingerprint("Widget", ident.KindStruct, ident.ShapeNamed, members)
	fp2 := ident.Fingerprint("Widget", ident.KindStruct, ident.ShapeNamed, members)
	assert.Equal(t, fp1, fp2)

	reordered := []ident.Member{members[1], members[0]}
	fp3 := ident.Fingerprint("Widget", ident.KindStruct, ident.ShapeNamed, reordered)
	assert.NotEqual(t, fp1, fp3)

	fp4 := ident.Fingerprint("Gadget", ident.KindStruct, ident.ShapeNamed, members)
	assert.NotEqual(t, fp1, fp4)
}

func TestTrackerDetectsCollision(t *testing.T) {
	tr := ident.NewTracker()

	require.NoError(t, tr.Track("a", 1))
	require.NoError(t, tr.Track("a", 1)) // same name/id pair again is fine

	err := tr.Track("b", 1)
	assert.ErrorIs(t, err, errs.ErrIdentifierCollision)
}

func TestTrackerRejectsZero(t *testing.T) {
	tr := ident.NewTracker()
	assert.ErrorIs(t, tr.Track("a", 0), errs.ErrIdentifierZero)
}

func TestTrackerReset(t *testing.T) {
	tr := ident.NewTracker()
	require.NoError(t, tr.Track("a", 1))

	tr.Reset()

	require.NoError(t, tr.Track("b", 1))
}
