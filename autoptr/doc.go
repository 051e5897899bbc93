// Package autoptr
// Author: eotpcomic <eotpcomic@gmail.com>
//
// Smart pointer for values implementing reference counting themselves via
// the api.RefCounted contract (Duplicate/Release). Unlike package ptr, no
// ownership topology is kept here: all counting is delegated to the value.
package autoptr
