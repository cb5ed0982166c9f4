//go:build tinygo

package app

import "uf2splash/hal"

func snapshot(_ hal.Panel, _ string, _ int) error {
	return hal.ErrNotImplemented
}
