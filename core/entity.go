package core

// Entity is a unique identifier for a simulated object
// Zero is never issued and marks "no entity"
type Entity uint64

const NoEntity Entity = 0
