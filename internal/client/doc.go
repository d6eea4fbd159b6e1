// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the local store, the backend adapter, connectivity detection, the
// offline controller and the status dashboard into a single process
// lifecycle.
package client
