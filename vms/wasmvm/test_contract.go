// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wasmvm

// ForwarderWasm imports seal0.seal_call_chain_extension, exports one page
// of memory as "memory" and exports "call", which forwards its five
// arguments to the import and returns its result.
var ForwarderWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic and version
	// type section: (i32 i32 i32 i32 i32) -> i32
	0x01, 0x0a, 0x01, 0x60, 0x05, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x01, 0x7f,
	// import section
	0x02, 0x23, 0x01,
	0x05, 's', 'e', 'a', 'l', '0',
	0x19, 's', 'e', 'a', 'l', '_', 'c', 'a', 'l', 'l', '_', 'c', 'h', 'a', 'i', 'n', '_',
	'e', 'x', 't', 'e', 'n', 's', 'i', 'o', 'n',
	0x00, 0x00,
	// function section
	0x03, 0x02, 0x01, 0x00,
	// memory section: min 1 page
	0x05, 0x03, 0x01, 0x00, 0x01,
	// export section
	0x07, 0x11, 0x02,
	0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
	0x04, 'c', 'a', 'l', 'l', 0x00, 0x01,
	// code section
	0x0a, 0x10, 0x01, 0x0e, 0x00,
	0x20, 0x00, 0x20, 0x01, 0x20, 0x02, 0x20, 0x03, 0x20, 0x04,
	0x10, 0x00,
	0x0b,
}
