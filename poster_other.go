//go:build !darwin && !linux && !windows

package main

func newNativePoster() (KeyPoster, error) {
	return nil, errNativeUnsupported
}
