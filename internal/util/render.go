package util

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Table list format.
const (
	TableFormatCSV     = "csv"
	TableFormatJSON    = "json"
	TableFormatTable   = "table"
	TableFormatYAML    = "yaml"
	TableFormatCompact = "compact"
)

// RenderTable renders the data in the given format onto the writer. The
// header is used for the table and csv formats, raw is used as-is for the
// json and yaml formats. The format may carry a ",noheader" or ",header"
// modifier to override the format's default.
func RenderTable(w io.Writer, format string, header []string, data [][]string, raw any) error {
	if w == nil {
		return fmt.Errorf("Invalid writer")
	}

	fields := strings.SplitN(format, ",", 2)
	format = fields[0]

	withHeader := format == TableFormatTable || format == TableFormatCompact
	if len(fields) == 2 {
		switch fields[1] {
		case "noheader":
			withHeader = false
		case "header":
			withHeader = true
		default:
			return fmt.Errorf("Invalid format modifier %q", fields[1])
		}
	}

	switch format {
	case TableFormatTable:
		table := getBaseTable(w, withHeader, header, data)
		table.SetRowLine(true)
		table.Render()
	case TableFormatCompact:
		table := getBaseTable(w, withHeader, header, data)
		table.SetRowLine(false)
		table.SetColumnSeparator("")
		table.SetCenterSeparator("")
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.Render()
	case TableFormatCSV:
		sort.Sort(SortColumnsNaturally(data))

		writer := csv.NewWriter(w)
		if withHeader {
			err := writer.Write(header)
			if err != nil {
				return err
			}
		}

		err := writer.WriteAll(data)
		if err != nil {
			return err
		}

		err = writer.Error()
		if err != nil {
			return err
		}
	case TableFormatJSON:
		enc := json.NewEncoder(w)

		err := enc.Encode(raw)
		if err != nil {
			return err
		}
	case TableFormatYAML:
		out, err := yaml.Marshal(raw)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "%s", out)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("Invalid format %q", format)
	}

	return nil
}

func getBaseTable(w io.Writer, withHeader bool, header []string, data [][]string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	if withHeader {
		table.SetHeader(header)
	}

	sort.Sort(SortColumnsNaturally(data))
	table.AppendBulk(data)
	return table
}
