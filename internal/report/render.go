package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/danmuck/kernelmeta/internal/metadata"
	"github.com/olekukonko/tablewriter"
)

var bufferHeader = []string{"Buffer Index", "基址 (Hex)", "初始化数据大小", "实际分配大小"}

// TitleFor derives the report title from its output path: the base name
// without a trailing ".md".
func TitleFor(outputPath string) string {
	return strings.TrimSuffix(filepath.Base(outputPath), ".md")
}

// Render writes the markdown report for rec to w.
func Render(w io.Writer, rec *metadata.Record, title string) error {
	var buf bytes.Buffer
	renderTo(&buf, rec, title)
	_, err := w.Write(buf.Bytes())
	return err
}

func renderTo(b *bytes.Buffer, rec *metadata.Record, title string) {
	fmt.Fprintf(b, "# `%s` 文件解析\n\n", title)

	b.WriteString("## 基本内核信息\n")
	fmt.Fprintf(b, "- **指令起始地址**: %s\n", rec.StartAddr.Hex())
	fmt.Fprintf(b, "- **内核ID**: %s\n", rec.KernelID.Hex())
	b.WriteString("- **线程块维度**:\n")
	fmt.Fprintf(b, "  - X维度: %d\n", rec.KernelSizeX.Uint)
	fmt.Fprintf(b, "  - Y维度: %d\n", rec.KernelSizeY.Uint)
	fmt.Fprintf(b, "  - Z维度: %d\n", rec.KernelSizeZ.Uint)
	fmt.Fprintf(b, "- **每warp线程数**: %d\n", rec.WfSize.Uint)
	fmt.Fprintf(b, "- **每个线程块的warp数**: %d\n\n", rec.WgSize.Uint)

	b.WriteString("## 内存配置\n")
	fmt.Fprintf(b, "- **元数据基址(CSR_KNL值)**: %s\n", rec.MetaDataBaseAddr.Hex())
	fmt.Fprintf(b, "- **每线程块share memory大小**: %s\n", HumanBytes(rec.LdsSize.Uint))
	fmt.Fprintf(b, "- **每线程private memory大小**: %s\n\n", HumanBytes(rec.PdsSize.Uint))

	b.WriteString("## 寄存器使用\n")
	fmt.Fprintf(b, "- **每warp标量寄存器使用**: %d\n", rec.SgprUsage.Uint)
	fmt.Fprintf(b, "- **每warp向量寄存器使用**: %d\n\n", rec.VgprUsage.Uint)

	b.WriteString("## Private Memory配置\n")
	fmt.Fprintf(b, "- **内核private memory基址**: %s\n\n", rec.PdsBaseAddr.Hex())

	b.WriteString("## Buffer信息\n")
	fmt.Fprintf(b, "- **Buffer数量**: %d\n\n", rec.NumBuffers)
	renderBufferTable(b, rec.Buffers())
}

func renderBufferTable(w io.Writer, buffers []metadata.Buffer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(bufferHeader)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, buf := range buffers {
		table.Append([]string{
			strconv.Itoa(buf.Index),
			buf.Base.Hex(),
			HumanBytes(buf.Size.Uint),
			HumanBytes(buf.AllocSize.Uint),
		})
	}
	table.Render()
}
