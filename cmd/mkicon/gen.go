package main

import (
	"bytes"
	"fmt"

	"uf2splash/icon"
)

const bytesPerRow = 12

type namedIcon struct {
	name string
	data []byte
}

// writeGo emits Go source declaring one byte slice per icon. The header
// bytes get a row of their own.
func writeGo(buf *bytes.Buffer, pkg string, icons []namedIcon) {
	fmt.Fprintf(buf, "// Code generated by mkicon. DO NOT EDIT.\n\npackage %s\n", pkg)
	for _, ic := range icons {
		fmt.Fprintf(buf, "\n// %s is a %dx%d icon, %d encoded bytes.\n", ic.name, ic.data[0], ic.data[1], len(ic.data)-icon.HeaderLen)
		fmt.Fprintf(buf, "var %s = []byte{\n", ic.name)
		writeRow(buf, ic.data[:icon.HeaderLen])
		body := ic.data[icon.HeaderLen:]
		for i := 0; i < len(body); i += bytesPerRow {
			writeRow(buf, body[i:min(i+bytesPerRow, len(body))])
		}
		buf.WriteString("}\n")
	}
}

func writeRow(buf *bytes.Buffer, row []byte) {
	buf.WriteByte('\t')
	for i, b := range row {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "0x%02x,", b)
	}
	buf.WriteByte('\n')
}
