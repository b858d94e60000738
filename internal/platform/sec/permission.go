// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec defines the authorization primitives shared across the platform.
package sec

import "strings"

// # Editor Permissions

// Permission is a bitset of independently grantable editor capabilities.
//
// A token may hold any subset; a command declares the single bitset it
// requires. The closed set below mirrors the grant columns on the token table.
type Permission uint8

const (
	// PermissionNone requires nothing beyond a valid token.
	PermissionNone Permission = 0x0

	CanAddItemToComic      Permission = 0x01
	CanRemoveItemFromComic Permission = 0x02
	CanChangeComicData     Permission = 0x04
	CanAddImageToItem      Permission = 0x08
	CanRemoveImageFromItem Permission = 0x10
	CanChangeItemData      Permission = 0x20
)

// permissionNames maps single bits to their canonical names, in bit order.
var permissionNames = []struct {
	bit  Permission
	name string
}{
	{CanAddItemToComic, "CanAddItemToComic"},
	{CanRemoveItemFromComic, "CanRemoveItemFromComic"},
	{CanChangeComicData, "CanChangeComicData"},
	{CanAddImageToItem, "CanAddImageToItem"},
	{CanRemoveImageFromItem, "CanRemoveImageFromItem"},
	{CanChangeItemData, "CanChangeItemData"},
}

// # Bitset Comparison

// Has reports whether every bit in required is also set in granted.
// An empty requirement is always satisfied.
func (granted Permission) Has(required Permission) bool {
	return required&^granted == 0
}

// Missing returns the bits of required that granted lacks.
func (granted Permission) Missing(required Permission) Permission {
	return required &^ granted
}

// String renders the set bits as a comma-separated list of capability names.
// The empty set renders as "None".
func (granted Permission) String() string {
	if granted == PermissionNone {
		return "None"
	}

	var names []string
	for _, entry := range permissionNames {
		if granted&entry.bit != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, ", ")
}
