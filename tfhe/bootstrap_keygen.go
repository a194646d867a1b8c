package tfhe

import (
	"runtime"
	"sync"

	"github.com/sp301415/tfhe-go/math/num"
)

// GenBootstrappingKey samples a new bootstrapping key: a GGSW encryption of
// each bit of sk.LWEKey under sk.GLWEKey (§4.6).
//
// This can take a long time; use GenBootstrappingKeyParallel for large
// parameter sets.
func GenBootstrappingKey[T TorusInt](sk SecretKey[T], params TLWEParameters[T]) BootstrappingKey[T] {
	n := params.LWEDimension()
	ggswEnc := NewGGSWEncryptor[T](params, params.BlindRotateParameters())

	bk := BootstrappingKey[T]{Value: make([]GGSWSample[T], n)}
	for i := 0; i < n; i++ {
		bk.Value[i] = ggswEnc.Encrypt(int64(sk.LWEKey.Value[i]), sk.GLWEKey)
	}
	return bk
}

// GenBootstrappingKeyParallel samples a new bootstrapping key in parallel,
// following the teacher's chunked-worker-pool idiom
// (bootstrap_keygen.go's GenBlindRotateKeyParallel): a job channel feeding a
// pool of ShallowCopy'd encryptors, one goroutine per chunk.
func GenBootstrappingKeyParallel[T TorusInt](sk SecretKey[T], params TLWEParameters[T]) BootstrappingKey[T] {
	n := params.LWEDimension()
	bk := BootstrappingKey[T]{Value: make([]GGSWSample[T], n)}

	chunkCount := num.Min(runtime.NumCPU(), num.Sqrt(n))
	if chunkCount < 1 {
		chunkCount = 1
	}

	encryptorPool := make([]*GGSWEncryptor[T], chunkCount)
	for i := range encryptorPool {
		encryptorPool[i] = NewGGSWEncryptor[T](params, params.BlindRotateParameters())
	}

	jobs := make(chan int)
	go func() {
		defer close(jobs)
		for i := 0; i < n; i++ {
			jobs <- i
		}
	}()

	var wg sync.WaitGroup
	wg.Add(chunkCount)
	for c := 0; c < chunkCount; c++ {
		go func(c int) {
			defer wg.Done()
			enc := encryptorPool[c]
			for i := range jobs {
				bk.Value[i] = enc.Encrypt(int64(sk.LWEKey.Value[i]), sk.GLWEKey)
			}
		}(c)
	}
	wg.Wait()

	return bk
}

// GenKeySwitchKey samples a new key-switch key translating the flattened
// large key (dimension GLWEDimension) down to the small key (dimension
// LWEDimension), used after blind rotation under OrderBlindRotateKeySwitch
// (§3, §9 Open Question — see DESIGN.md: retained and exercised by
// default).
func GenKeySwitchKey[T TorusInt](sk SecretKey[T], params TLWEParameters[T]) KeySwitchKey[T] {
	largeKey := FlattenSecretKey(sk.GLWEKey)
	gadget := params.KeySwitchParameters()
	tlweEnc := NewTLWEEncryptor[T](params)

	ksk := KeySwitchKey[T]{
		Value:  make([][]TLWESample[T], len(largeKey.Value)),
		Gadget: gadget,
	}

	level := gadget.Level()
	logLastScale := gadget.LogLastScale()
	baseLog := gadget.BaseLog()

	for i := range largeKey.Value {
		ksk.Value[i] = make([]TLWESample[T], level)
		for j := 0; j < level; j++ {
			shift := logLastScale + baseLog*(level-1-j)
			mu := largeKey.Value[i] << shift
			ksk.Value[i][j] = tlweEnc.Encrypt(mu, sk.LWEKey)
		}
	}

	return ksk
}

// GenKeySwitchKeyParallel samples a new key-switch key in parallel, using
// the same chunked worker-pool idiom as GenBootstrappingKeyParallel.
func GenKeySwitchKeyParallel[T TorusInt](sk SecretKey[T], params TLWEParameters[T]) KeySwitchKey[T] {
	largeKey := FlattenSecretKey(sk.GLWEKey)
	gadget := params.KeySwitchParameters()

	ksk := KeySwitchKey[T]{
		Value:  make([][]TLWESample[T], len(largeKey.Value)),
		Gadget: gadget,
	}

	level := gadget.Level()
	logLastScale := gadget.LogLastScale()
	baseLog := gadget.BaseLog()

	chunkCount := num.Min(runtime.NumCPU(), num.Sqrt(len(largeKey.Value)))
	if chunkCount < 1 {
		chunkCount = 1
	}

	encryptorPool := make([]*TLWEEncryptor[T], chunkCount)
	for i := range encryptorPool {
		encryptorPool[i] = NewTLWEEncryptor[T](params)
	}

	jobs := make(chan int)
	go func() {
		defer close(jobs)
		for i := range largeKey.Value {
			jobs <- i
		}
	}()

	var wg sync.WaitGroup
	wg.Add(chunkCount)
	for c := 0; c < chunkCount; c++ {
		go func(c int) {
			defer wg.Done()
			enc := encryptorPool[c]
			for i := range jobs {
				ksk.Value[i] = make([]TLWESample[T], level)
				for j := 0; j < level; j++ {
					shift := logLastScale + baseLog*(level-1-j)
					mu := largeKey.Value[i] << shift
					ksk.Value[i][j] = enc.Encrypt(mu, sk.LWEKey)
				}
			}
		}(c)
	}
	wg.Wait()

	return ksk
}

// GenEvaluationKey samples a new evaluation key, containing everything an
// untrusted Evaluator needs to run gates: the bootstrapping key, and (since
// BootstrapOrder defaults to OrderBlindRotateKeySwitch) a key-switch key.
func GenEvaluationKey[T TorusInt](sk SecretKey[T], params TLWEParameters[T]) EvaluationKey[T] {
	return EvaluationKey[T]{
		BootstrapKey: GenBootstrappingKey(sk, params),
		KeySwitchKey: GenKeySwitchKey(sk, params),
	}
}

// GenEvaluationKeyParallel samples a new evaluation key in parallel.
func GenEvaluationKeyParallel[T TorusInt](sk SecretKey[T], params TLWEParameters[T]) EvaluationKey[T] {
	return EvaluationKey[T]{
		BootstrapKey: GenBootstrappingKeyParallel(sk, params),
		KeySwitchKey: GenKeySwitchKeyParallel(sk, params),
	}
}
