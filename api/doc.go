// Package api
// Author: eotpcomic <eotpcomic@gmail.com>
//
// Public contracts of the shared-ownership library: the Shared handle
// interface, the RefCounted value contract, and common errors. Concrete
// implementations live in ptr, autoptr and pool.
package api
