// Package conn implements the serial transports a MAX7219 chain can be wired to.
//
// Every transport sends one transfer per Tx call, framed by the chip-select
// line: select goes low, the bytes are clocked out most significant bit first
// and select goes high again, which latches the data into the chain.
package conn
