// Package translator contains the Translator entity: the worker side of the
// booking domain. Translators are owned by an external user-management
// service; this package models the read-only capability attributes the
// matching and dispatch services need (language pairs, service region,
// availability windows, notification channels).
package translator
