// Package driving defines the interfaces through which the outside world
// drives the core. The CLI adapter depends on these, the services
// implement them.
package driving
