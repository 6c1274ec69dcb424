package grammar

// Tables is the opcode, operand and extended-instruction table triple
// selected for one target environment.
type Tables struct {
	Opcodes  *OpcodeTable
	Operands *OperandTable
	ExtInsts *ExtInstTable
}

// CapabilitiesSatisfied reports whether an entry requiring required is
// enabled by declared: either nothing is required or at least one
// required capability is declared.
func CapabilitiesSatisfied(required, declared CapabilitySet) bool {
	return required.IsEmpty() || required.Intersects(declared)
}

// ExtensionsSatisfied reports whether an entry requiring required is
// enabled by declared. An empty requirement means the entry is core.
func ExtensionsSatisfied(required, declared ExtensionSet) bool {
	return required.IsEmpty() || required.Intersects(declared)
}

// Declared is what a module has declared with OpCapability and OpExtension.
//
// Lookups never apply gating; permissive consumers such as assemblers and
// disassemblers skip these checks, strict ones call them.
type Declared struct {
	Capabilities CapabilitySet
	Extensions   ExtensionSet
}

// AllowsOpcode reports whether d enables the instruction.
func (d Declared) AllowsOpcode(desc *OpcodeDesc) bool {
	return CapabilitiesSatisfied(desc.Capabilities, d.Capabilities)
}

// AllowsOperand reports whether d enables the operand value.
//
// The capability requirement always applies. The extension requirement
// applies on its own only to values that need no capability: a value
// whose capability requirement is met by a declared capability is
// enabled regardless of declared extensions, since an extension-gated
// capability cannot be declared without its extension.
func (d Declared) AllowsOperand(desc *OperandDesc) bool {
	if !CapabilitiesSatisfied(desc.Capabilities, d.Capabilities) {
		return false
	}
	if !desc.Capabilities.IsEmpty() {
		return true
	}
	return ExtensionsSatisfied(desc.Extensions, d.Extensions)
}

// AllowsExtInst reports whether d enables the extended instruction.
func (d Declared) AllowsExtInst(desc *ExtInstDesc) bool {
	return CapabilitiesSatisfied(desc.Capabilities, d.Capabilities)
}

// WithCapabilities returns a copy of d with caps added.
func (d Declared) WithCapabilities(caps ...Capability) Declared {
	d.Capabilities = d.Capabilities.Union(Capabilities(caps...))
	return d
}

// WithExtensions returns a copy of d with exts added.
func (d Declared) WithExtensions(exts ...Extension) Declared {
	d.Extensions = d.Extensions.Union(Extensions(exts...))
	return d
}
