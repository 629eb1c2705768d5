// Package payment provides the Payment aggregate: one attempt to collect an
// order total through the external payment provider, its status machine and
// refund bookkeeping. Amounts are decimals in rupees and converted to paise
// (minor units) only at the provider boundary.
package payment
