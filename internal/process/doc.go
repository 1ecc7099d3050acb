// Package process terminates browser process trees left behind after a render.
package process
