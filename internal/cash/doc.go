// Package cash holds the register arithmetic: movement derivation, fee
// netting, float inheritance and close-time reconciliation. Everything here
// is a pure function of its inputs; callers load the ledgers and persist
// the results.
package cash
