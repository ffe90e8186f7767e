package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Santiagox01/VeterinariaFinal/internal/accessory"
	"github.com/Santiagox01/VeterinariaFinal/internal/importer/catalog"
)

func TestParser_Parse(t *testing.T) {
	type args struct {
		csvContent string
	}

	type testCase struct {
		name    string
		args    args
		wantLen int
		verify  func(t *testing.T, params []accessory.CreateParams)
		wantErr bool
	}

	tests := []testCase{
		{
			name: "StandardExport",
			args: args{
				csvContent: `Inventario de accesorios - 15-03-2026
Tienda;Accesorios Veterinaria

Código;Nombre;Tipo;Precio;Stock
ACC001;Collar pequeño;Collar;15.000;12
ACC002;Correa de cuero;Correa;25.500,50;4
`,
			},
			wantLen: 2,
			verify: func(t *testing.T, params []accessory.CreateParams) {
				assert.Equal(t, "ACC001", params[0].ID)
				assert.Equal(t, "Collar pequeño", params[0].Name)
				assert.Equal(t, "Collar", params[0].Type)
				assert.Equal(t, int64(1500000), params[0].Price)
				assert.Equal(t, 12, params[0].Stock)

				assert.Equal(t, "ACC002", params[1].ID)
				assert.Equal(t, int64(2550050), params[1].Price)
				assert.Equal(t, 4, params[1].Stock)
			},
			wantErr: false,
		},
		{
			name: "SkipsMalformedRows",
			args: args{
				csvContent: `Código;Nombre;Tipo;Precio;Stock
ACC001;Collar pequeño;Collar;15.000;12
;Sin código;Collar;1.000;5
ACC003;Juguete;Juguete;no-es-precio;5
ACC004;Correa;Correa;2.000;muchos
ACC005;Arnés;Arnés;8.000;3
`,
			},
			wantLen: 2,
			verify: func(t *testing.T, params []accessory.CreateParams) {
				assert.Equal(t, "ACC001", params[0].ID)
				assert.Equal(t, "ACC005", params[1].ID)
			},
			wantErr: false,
		},
		{
			name: "ColumnsInDifferentOrder",
			args: args{
				csvContent: `Nombre;Stock;Código;Precio;Tipo
Collar pequeño;12;ACC001;15.000;Collar
`,
			},
			wantLen: 1,
			verify: func(t *testing.T, params []accessory.CreateParams) {
				assert.Equal(t, "ACC001", params[0].ID)
				assert.Equal(t, "Collar pequeño", params[0].Name)
			},
			wantErr: false,
		},
		{
			name: "EmptyFile",
			args: args{
				csvContent: "",
			},
			wantErr: true,
		},
		{
			name: "NoHeader",
			args: args{
				csvContent: `ACC001;Collar pequeño;Collar;15.000;12`,
			},
			wantErr: true,
		},
		{
			name: "HeaderOnly",
			args: args{
				csvContent: `Código;Nombre;Tipo;Precio;Stock`,
			},
			wantLen: 0,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := catalog.NewParser()
			got, err := p.Parse(strings.NewReader(tt.args.csvContent))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)

			if tt.verify != nil {
				tt.verify(t, got)
			}
		})
	}
}
