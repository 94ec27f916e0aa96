//go:build !debug

package board

const debug = false
