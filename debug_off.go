//go:build !garnet_debug

package garnet

const debugAssertions = false
