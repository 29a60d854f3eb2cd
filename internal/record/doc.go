// Package record defines the persisted data model for terminus.
//
// A single Document holds everything the user records: the life-expectancy
// pair, wills, belongings, the funeral plan, farewell letters and the medical
// directive. Wills, belongings and letters are records with a store-assigned
// ID and CreatedAt; the funeral plan and medical directive are singletons
// replaced wholesale.
//
// Key design constraints:
//   - Choice fields are closed string enums; unknown values never decode
//   - Sequences are never nil, so they always persist as []
//   - JSON keys use camelCase to stay compatible with existing saved data
//
// This package imports nothing internal.
package record
