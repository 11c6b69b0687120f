// Package orgsvc - Test các helper thuần của lifecycle node cấp bậc.
package orgsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLockHierarchyKey_SameKeySameMutex(t *testing.T) {
	channelID := primitive.NewObjectID()

	m1 := lockHierarchyKey(channelID, "AG01")
	m2 := lockHierarchyKey(channelID, "AG01")
	if m1 != m2 {
		t.Error("cùng cặp (channel, levelCode) phải trả về cùng một mutex")
	}

	m3 := lockHierarchyKey(channelID, "AG02")
	if m1 == m3 {
		t.Error("levelCode khác phải có mutex riêng")
	}

	otherChannel := primitive.NewObjectID()
	m4 := lockHierarchyKey(otherChannel, "AG01")
	if m1 == m4 {
		t.Error("channel khác phải có mutex riêng dù trùng levelCode")
	}
}
