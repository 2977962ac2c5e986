package parser

import "github.com/carloss4dv/agro-precios/pkg/precios/models"

// sampleGrid mimics the layout of a 2024 workbook: a title, the week and
// date header rows, then sectors with their products.
func sampleGrid() models.Grid {
	return models.Grid{
		models.NewRow("PRECIOS MEDIOS NACIONALES 2024"),
		models.NewRow(),
		models.NewRow("", "", "", "Semana 1", "Semana 2", "Semana 3"),
		models.NewRow("", "", "", "01/01 - 07/01", "08/01 - 14/01", "15/01 - 21/01"),
		models.NewRow("CEREALES"),
		models.NewRow("", "Trigo blando panificable", "Trigo blando (€/t)", 230.5, "240,5", "-"),
		models.NewRow("VINO"),
		models.NewRow("", "Convencional", "Aceite de girasol refinado convencional (€/100kg)", 150, 155, 160),
		models.NewRow("", "", "Vino tinto sin DOP/IGP (€/hectolitro)", 30, 31, 0),
		models.NewRow("OVINO (5)"),
		models.NewRow("", "", "Cordero 9-19 kg Canal (€/100kg)", 700, 710, 720),
		models.NewRow("(1) Precios sin IVA"),
	}
}
