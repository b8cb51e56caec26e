package nodeid

// Separator splits the kind from the local part of an identifier.
const Separator = "::"

// KindProtein is the kind carried by every canonical protein identifier.
const KindProtein = "Protein"
