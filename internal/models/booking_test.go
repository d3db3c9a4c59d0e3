package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The booking FK columns are not-null, so their constraints must refuse to
// orphan a booking instead of nulling the reference out.
func TestBookingRelationsRestrictDeletion(t *testing.T) {
	typ := reflect.TypeOf(Booking{})

	for _, name := range []string{"Mentor", "Student", "Service"} {
		f, ok := typ.FieldByName(name)
		require.True(t, ok, name)

		tag := f.Tag.Get("gorm")
		assert.Contains(t, tag, "OnDelete:RESTRICT", name)
		assert.NotContains(t, tag, "SET NULL", name)
	}
}
