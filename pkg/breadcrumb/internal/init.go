// Package internal contains the infrastructure behind the breadcrumb
// navigation shell: SDL lifecycle, window and font management, input
// translation, theming, texture caching and logging. Nothing here is
// part of the public API.
package internal
