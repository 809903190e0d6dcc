// SPDX-License-Identifier: Apache-2.0

// Package client implements the admin dashboard runtime.
//
// It wires the terminal UI flows, client services, and background inbox
// refresh into a single process lifecycle.
package client
