package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestIsOwnerOrAdminOwner(t *testing.T) {
	ownerID := uuid.New()
	if !IsOwnerOrAdmin(ownerID, "user", ownerID) {
		t.Error("owner should have access to their own resource")
	}
}

func TestIsOwnerOrAdminAdmin(t *testing.T) {
	if !IsOwnerOrAdmin(uuid.New(), "admin", uuid.New()) {
		t.Error("admin should have access to any resource")
	}
}

func TestIsOwnerOrAdminStranger(t *testing.T) {
	if IsOwnerOrAdmin(uuid.New(), "user", uuid.New()) {
		t.Error("stranger should not have access")
	}
}

func TestIsOwnerOrAdminStoreOwnerIsNotAdmin(t *testing.T) {
	// The store-owner role carries no special privilege over resources
	// it does not own.
	if IsOwnerOrAdmin(uuid.New(), "store-owner", uuid.New()) {
		t.Error("store-owner should not have access to another owner's resource")
	}
}
