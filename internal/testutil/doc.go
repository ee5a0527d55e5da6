// Package testutil holds deterministic helpers shared by package tests.
package testutil
