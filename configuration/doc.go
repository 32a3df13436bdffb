// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the configuration file
//
// the configuration file is a Lua script so that repeated
// settings can be computed rather than copied by hand
package configuration
