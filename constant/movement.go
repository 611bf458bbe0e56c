package constant

type MovementType string

const (
	MovementProduccion    MovementType = "PRODUCCION"
	MovementCompra        MovementType = "COMPRA"
	MovementVenta         MovementType = "VENTA"
	MovementMerma         MovementType = "MERMA"
	MovementPerdidaRobo   MovementType = "PERDIDA_ROBO"
	MovementSobrante      MovementType = "SOBRANTE"
	MovementTransferencia MovementType = "TRANSFERENCIA"
)

var MovementTypes = []MovementType{
	MovementProduccion,
	MovementCompra,
	MovementVenta,
	MovementMerma,
	MovementPerdidaRobo,
	MovementSobrante,
	MovementTransferencia,
}

func (t MovementType) Valid() bool {
	for _, mt := range MovementTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// Decreases reports whether the movement takes stock out of its source branch.
func (t MovementType) Decreases() bool {
	switch t {
	case MovementVenta, MovementMerma, MovementPerdidaRobo, MovementTransferencia:
		return true
	}
	return false
}

// Increases reports whether the movement puts stock into its destination branch.
func (t MovementType) Increases() bool {
	switch t {
	case MovementProduccion, MovementCompra, MovementSobrante, MovementTransferencia:
		return true
	}
	return false
}
