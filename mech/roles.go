// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import "github.com/goki/ki/kit"

// Roles are the roles a mechanism plays in the membrane current balance,
// which determines how the simulation driver consumes its output.
type Roles int32

//go:generate stringer -type=Roles

var KiT_Roles = kit.Enums.AddEnum(RolesN, kit.NotBitFlag, nil)

// The mechanism roles
const (
	// Channel mechanisms produce a transmembrane current (outward positive),
	// summed into the membrane current balance.
	Channel Roles = iota

	// Pump mechanisms produce the rate of change of their own state variables
	// (e.g., an intracellular ion concentration), which the driver integrates.
	Pump

	RolesN
)
