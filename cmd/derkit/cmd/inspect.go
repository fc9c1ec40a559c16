package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"derkit/der"

	"github.com/spf13/cobra"
)

// hexPreviewLen caps how many payload bytes inspect prints per element.
const hexPreviewLen = 32

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Prints the TLV structure of a DER file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := ioutil.ReadFile(args[0])
		if err != nil {
			return err
		}
		return dumpTLVs(os.Stdout, data, 0)
	},
}

// dumpTLVs walks the concatenated TLVs in buf, descending into sequences.
func dumpTLVs(w io.Writer, buf []byte, depth int) error {
	indent := strings.Repeat("  ", depth)
	idx := 0
	for idx < len(buf) {
		var obj der.Object
		n, err := obj.Decode(buf[idx:], false)
		if err != nil {
			return err
		}
		switch obj.Tag {
		case der.TagSequence:
			fmt.Fprintf(w, "%sSEQUENCE (%d bytes)\n", indent, len(obj.Payload))
			if err := dumpTLVs(w, obj.Payload, depth+1); err != nil {
				return err
			}
		case der.TagInteger:
			var item der.Integer
			if _, err := item.Decode(buf[idx:], false); err != nil {
				return err
			}
			fmt.Fprintf(w, "%sINTEGER %s\n", indent, item.Value)
		default:
			fmt.Fprintf(w, "%s%s (%d bytes) %s\n", indent, tagName(obj.Tag), len(obj.Payload), hexPreview(obj.Payload))
		}
		idx += n
	}
	return nil
}

func tagName(tag byte) string {
	if tag == der.TagBitString {
		return "BIT STRING"
	}
	return fmt.Sprintf("TAG 0x%02x", tag)
}

func hexPreview(payload []byte) string {
	if len(payload) > hexPreviewLen {
		return hex.EncodeToString(payload[:hexPreviewLen]) + "..."
	}
	return hex.EncodeToString(payload)
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
