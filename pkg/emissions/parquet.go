package emissions

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

type cleanParquetRow struct {
	Engine   string  `parquet:"name=engine, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	BPR      float64 `parquet:"name=BPR, type=DOUBLE"`
	OPR      float64 `parquet:"name=OPR, type=DOUBLE"`
	Year     *int32  `parquet:"name=year, type=INT32, repetitiontype=OPTIONAL"`
	ModePct  float64 `parquet:"name=mode_pct, type=DOUBLE"`
	ThrustKN float64 `parquet:"name=thrust_kN, type=DOUBLE"`
	FuelKgS  float64 `parquet:"name=fuel_kg_s, type=DOUBLE"`
	TSFC     float64 `parquet:"name=TSFC, type=DOUBLE"`
}

// WriteParquet writes the same rows as WriteCSVFile in Parquet form with
// snappy compression. A missing year is stored as null.
func WriteParquet(path string, recs []Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}
	pw, err := writer.NewParquetWriter(fw, new(cleanParquetRow), 4)
	if err != nil {
		fw.Close()
		return fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, r := range recs {
		row := cleanParquetRow{
			Engine:   r.Engine,
			BPR:      r.BPR,
			OPR:      r.OPR,
			ModePct:  r.ModePct,
			ThrustKN: r.ThrustKN,
			FuelKgS:  r.FuelKgS,
			TSFC:     r.TSFC,
		}
		if r.HasYear {
			y := int32(r.Year)
			row.Year = &y
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			fw.Close()
			return fmt.Errorf("write parquet row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return fmt.Errorf("finish parquet file: %w", err)
	}
	return fw.Close()
}
